// model/livro.go
package model

// Livro is the rentable catalog record. The renter UUID is only ever set
// together with disponivel=false by the alugar/devolver flow.
type Livro struct {
	ID                  int64   `json:"id" gorm:"column:id_livro;primaryKey;autoIncrement"`
	Titulo              string  `json:"titulo" gorm:"column:titulo;not null"`
	Autor               string  `json:"autor" gorm:"column:autor;not null"`
	ISBN                string  `json:"isbn" gorm:"column:isbn;not null"`
	Disponivel          bool    `json:"disponivel" gorm:"column:disponivel"`
	UUIDUsuarioKeycloak *string `json:"uuidUsuarioKeycloak,omitempty" gorm:"column:uuid_usuario_keycloak"`
}

func (Livro) TableName() string { return "tb_livro" }

// FiltroLivro carries the non-empty fields used for example matching on
// /livro/getAllPage. Empty strings and nil mean "not filtered".
type FiltroLivro struct {
	Titulo     string
	Autor      string
	ISBN       string
	Disponivel *bool
}

// Pagina is the pagination request for FindPage.
type Pagina struct {
	Page      int
	Size      int
	Sort      string
	Direction string
}
