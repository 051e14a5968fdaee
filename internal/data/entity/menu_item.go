package entity

type MenuItem struct {
	ID          int     `db:"id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Price       float64 `db:"price"`
	Category    string  `db:"category"`
	ImageURL    string  `db:"image_url"`
	IsAvailable bool    `db:"is_available"`
}
