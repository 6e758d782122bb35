package livro

import "github.com/galzit0/api-livros/model"

// LivroDTO is the external shape of a book. Mapping to and from the entity
// is explicit; no reflective field matching.
type LivroDTO struct {
	ID                  int64   `json:"id"`
	Titulo              string  `json:"titulo" validate:"required"`
	Autor               string  `json:"autor" validate:"required"`
	ISBN                string  `json:"isbn" validate:"required"`
	Disponivel          bool    `json:"disponivel"`
	UUIDUsuarioKeycloak *string `json:"uuidUsuarioKeycloak,omitempty"`
}

func toModel(d LivroDTO) model.Livro {
	return model.Livro{
		ID:                  d.ID,
		Titulo:              d.Titulo,
		Autor:               d.Autor,
		ISBN:                d.ISBN,
		Disponivel:          d.Disponivel,
		UUIDUsuarioKeycloak: d.UUIDUsuarioKeycloak,
	}
}

func fromModel(l model.Livro) LivroDTO {
	return LivroDTO{
		ID:                  l.ID,
		Titulo:              l.Titulo,
		Autor:               l.Autor,
		ISBN:                l.ISBN,
		Disponivel:          l.Disponivel,
		UUIDUsuarioKeycloak: l.UUIDUsuarioKeycloak,
	}
}

func fromModels(ls []model.Livro) []LivroDTO {
	out := make([]LivroDTO, 0, len(ls))
	for _, l := range ls {
		out = append(out, fromModel(l))
	}
	return out
}

// PageDTO mirrors the page envelope the original API exposed.
type PageDTO struct {
	Content       []LivroDTO `json:"content"`
	TotalElements int64      `json:"totalElements"`
	TotalPages    int64      `json:"totalPages"`
	Number        int        `json:"number"`
	Size          int        `json:"size"`
	Sort          string     `json:"sort"`
	Direction     string     `json:"direction"`
}
