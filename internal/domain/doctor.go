package domain

type Doctor struct {
	ID        string `json:"id"`
	FullName  string `json:"nombreCompleto"`
	Specialty string `json:"especialidad"`
}
