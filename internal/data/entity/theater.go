package entity

type Theater struct {
	BaseSimple
	Name     string `db:"name"`
	Location string `db:"location"`
}
