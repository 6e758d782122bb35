package livro

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/galzit0/api-livros/app/echoServer/jwtx"
	"github.com/galzit0/api-livros/model"
	livrosvc "github.com/galzit0/api-livros/service/livro"
)

type Controller struct {
	Svc livrosvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

const defaultPageSize = 20

// GET /livro/getAll
func (h *Controller) GetAll(c echo.Context) error {
	rows, err := h.Svc.GetAll(c.Request().Context())
	if err != nil {
		h.Log.Error("livro getAll", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, fromModels(rows))
}

// GET /livro/getAllPage
func (h *Controller) GetAllPage(c echo.Context) error {
	filtro := model.FiltroLivro{
		Titulo: c.QueryParam("titulo"),
		Autor:  c.QueryParam("autor"),
		ISBN:   c.QueryParam("isbn"),
	}
	if v := c.QueryParam("disponivel"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid disponivel"})
		}
		filtro.Disponivel = &b
	}

	pg := model.Pagina{
		Page:      intQuery(c, "page", 0),
		Size:      intQuery(c, "size", defaultPageSize),
		Sort:      c.QueryParam("sort"),
		Direction: c.QueryParam("direction"),
	}
	if pg.Size <= 0 {
		pg.Size = defaultPageSize
	}
	if pg.Page < 0 {
		pg.Page = 0
	}
	if pg.Sort == "" {
		pg.Sort = "id"
	}
	if pg.Direction == "" {
		pg.Direction = "desc"
	}

	rows, total, err := h.Svc.GetPage(c.Request().Context(), filtro, pg)
	if err != nil {
		h.Log.Error("livro getAllPage", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	totalPages := total / int64(pg.Size)
	if total%int64(pg.Size) != 0 {
		totalPages++
	}
	return c.JSON(http.StatusOK, PageDTO{
		Content:       fromModels(rows),
		TotalElements: total,
		TotalPages:    totalPages,
		Number:        pg.Page,
		Size:          pg.Size,
		Sort:          pg.Sort,
		Direction:     pg.Direction,
	})
}

// GET /livro/get/:id
func (h *Controller) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	row, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("livro get", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if row == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, fromModel(*row))
}

// POST /livro/save
func (h *Controller) Save(c echo.Context) error {
	var req LivroDTO
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	created, err := h.Svc.Create(c.Request().Context(), toModel(req))
	if err != nil {
		h.Log.Error("livro save", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, fromModel(*created))
}

// PUT /livro/update/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req LivroDTO
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	// The path id wins over whatever the body carries.
	req.ID = id

	updated, err := h.Svc.Update(c.Request().Context(), toModel(req))
	if err != nil {
		h.Log.Error("livro update", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if updated == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, fromModel(*updated))
}

// DELETE /livro/delete/:id
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	removed, err := h.Svc.Delete(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("livro delete", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if removed == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.String(http.StatusOK, "Livro "+removed.Titulo+" excluído")
}

// PUT /livro/alugar/:id
func (h *Controller) Alugar(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	usuario, err := jwtx.UsuarioFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}

	if err := h.Svc.Alugar(c.Request().Context(), id, usuario); err != nil {
		switch livrosvc.Code(err) {
		case livrosvc.ErrNotFound:
			return c.NoContent(http.StatusNoContent)
		case livrosvc.ErrUnavailable:
			return c.String(http.StatusConflict, "Livro indisponível")
		default:
			h.Log.Error("livro alugar", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.String(http.StatusOK, "Livro alugado com sucesso")
}

// PUT /livro/devolver/:id
func (h *Controller) Devolver(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	usuario, err := jwtx.UsuarioFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}

	if err := h.Svc.Devolver(c.Request().Context(), id, usuario); err != nil {
		switch livrosvc.Code(err) {
		case livrosvc.ErrNotFound:
			return c.NoContent(http.StatusNoContent)
		case livrosvc.ErrNotRented:
			return c.String(http.StatusConflict, "Livro não está alugado")
		default:
			h.Log.Error("livro devolver", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.String(http.StatusOK, "Livro devolvido!")
}

func intQuery(c echo.Context, name string, def int) int {
	v := c.QueryParam(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
