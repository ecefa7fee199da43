package domain

import "strings"

type Sex string

const (
	SexMale   Sex = "MASCULINO"
	SexFemale Sex = "FEMENINO"
)

type Address struct {
	Street       string `json:"calle,omitempty"`
	Number       string `json:"numero,omitempty"`
	Neighborhood string `json:"colonia,omitempty"`
	PostalCode   string `json:"codigoPostal,omitempty"`
	City         string `json:"ciudad,omitempty"`
	State        string `json:"estado,omitempty"`
	Country      string `json:"pais,omitempty"`
}

type Patient struct {
	ID        string   `json:"id"`
	FirstName string   `json:"nombre"`
	LastName  string   `json:"apellido"`
	BirthDate string   `json:"fechaNacimiento"`
	Sex       Sex      `json:"sexo"`
	Phone     string   `json:"telefono"`
	Email     string   `json:"email"`
	Address   *Address `json:"direccion,omitempty"`
}

func (p Patient) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}
