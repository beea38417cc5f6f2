package entity

type Movie struct {
	Base
	Title string `db:"title"`
	Genre string `db:"genre"`
	Year  string `db:"year"`
}
