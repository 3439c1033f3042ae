package entity

type Artist struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Bio     string `json:"bio"`
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
