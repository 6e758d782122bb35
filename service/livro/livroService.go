package livrosvc

import (
	"context"
	"errors"
	"log/slog"

	"github.com/galzit0/api-livros/model"
	livrorepo "github.com/galzit0/api-livros/repository/livro"
	mailrepo "github.com/galzit0/api-livros/repository/mail"
	notifyrepo "github.com/galzit0/api-livros/repository/notify"
)

// errors used by controllers

type ErrCode string

const (
	ErrNotFound    ErrCode = "LIVRO_NOT_FOUND"
	ErrUnavailable ErrCode = "LIVRO_UNAVAILABLE"
	ErrNotRented   ErrCode = "LIVRO_NOT_RENTED"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Service interface {
	GetAll(ctx context.Context) ([]model.Livro, error)
	GetPage(ctx context.Context, filtro model.FiltroLivro, pg model.Pagina) ([]model.Livro, int64, error)
	Get(ctx context.Context, id int64) (*model.Livro, error)

	// Create persists a new book: any supplied id and renter are discarded
	// and the book starts available.
	Create(ctx context.Context, l model.Livro) (*model.Livro, error)

	// Update full-replaces an existing book; (nil, nil) when the id is
	// unknown, nothing is inserted.
	Update(ctx context.Context, l model.Livro) (*model.Livro, error)

	// Delete removes a book and returns it; (nil, nil) when absent.
	Delete(ctx context.Context, id int64) (*model.Livro, error)

	// Alugar marks the book unavailable and records the renter.
	Alugar(ctx context.Context, id int64, usuario model.Usuario) error

	// Devolver marks the book available again and clears the renter. Any
	// authenticated caller may return any book.
	Devolver(ctx context.Context, id int64, usuario model.Usuario) error
}

type service struct {
	store       livrorepo.Store
	pub         notifyrepo.Publisher
	mailer      mailrepo.Mailer
	mailEnabled bool
	log         *slog.Logger
}

func New(store livrorepo.Store, pub notifyrepo.Publisher, mailer mailrepo.Mailer, mailEnabled bool, log *slog.Logger) Service {
	return &service{store: store, pub: pub, mailer: mailer, mailEnabled: mailEnabled, log: log}
}

func (s *service) GetAll(ctx context.Context) ([]model.Livro, error) {
	return s.store.FindAll(ctx)
}

func (s *service) GetPage(ctx context.Context, filtro model.FiltroLivro, pg model.Pagina) ([]model.Livro, int64, error) {
	return s.store.FindPage(ctx, filtro, pg)
}

func (s *service) Get(ctx context.Context, id int64) (*model.Livro, error) {
	return s.store.FindByID(ctx, id)
}

func (s *service) Create(ctx context.Context, l model.Livro) (*model.Livro, error) {
	l.ID = 0
	l.Disponivel = true
	l.UUIDUsuarioKeycloak = nil

	err := s.store.Transaction(ctx, func(tx livrorepo.Store) error {
		return tx.Save(ctx, &l)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "Livro criado: "+l.Titulo)
	return &l, nil
}

func (s *service) Update(ctx context.Context, l model.Livro) (*model.Livro, error) {
	var found bool
	err := s.store.Transaction(ctx, func(tx livrorepo.Store) error {
		existing, err := tx.FindByID(ctx, l.ID)
		if err != nil {
			return err
		}
		if existing == nil {
			return nil
		}
		found = true
		return tx.Save(ctx, &l)
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	s.publish(ctx, "Livro atualizado: "+l.Titulo)
	return &l, nil
}

func (s *service) Delete(ctx context.Context, id int64) (*model.Livro, error) {
	var removed *model.Livro
	err := s.store.Transaction(ctx, func(tx livrorepo.Store) error {
		existing, err := tx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return nil
		}
		if err := tx.DeleteByID(ctx, id); err != nil {
			return err
		}
		removed = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	if removed == nil {
		return nil, nil
	}

	s.publish(ctx, "Livro removido: "+removed.Titulo)
	return removed, nil
}

func (s *service) Alugar(ctx context.Context, id int64, usuario model.Usuario) error {
	var titulo string
	err := s.store.Transaction(ctx, func(tx livrorepo.Store) error {
		l, err := tx.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if l == nil {
			return makeErr(ErrNotFound)
		}
		if !l.Disponivel {
			return makeErr(ErrUnavailable)
		}
		l.Disponivel = false
		renter := usuario.UUID
		l.UUIDUsuarioKeycloak = &renter
		titulo = l.Titulo
		return tx.Save(ctx, l)
	})
	if err != nil {
		return err
	}

	msg := "O livro '" + titulo + "' foi alugado com sucesso!"
	s.publish(ctx, msg)
	s.mail(usuario.Email, "Confirmação de Aluguel de livro", msg)
	return nil
}

func (s *service) Devolver(ctx context.Context, id int64, usuario model.Usuario) error {
	var titulo string
	err := s.store.Transaction(ctx, func(tx livrorepo.Store) error {
		l, err := tx.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if l == nil {
			return makeErr(ErrNotFound)
		}
		if l.Disponivel {
			return makeErr(ErrNotRented)
		}
		l.Disponivel = true
		l.UUIDUsuarioKeycloak = nil
		titulo = l.Titulo
		return tx.Save(ctx, l)
	})
	if err != nil {
		return err
	}

	msg := "O livro '" + titulo + "' foi devolvido com sucesso!"
	s.publish(ctx, msg)
	s.mail(usuario.Email, "Confirmação de devolução do livro", msg)
	return nil
}

// publish runs after the transaction committed. Failures are logged and
// swallowed: the persisted change stays committed.
func (s *service) publish(ctx context.Context, message string) {
	if err := s.pub.Publish(ctx, message); err != nil {
		s.log.Warn("notification publish failed", "err", err, "message", message)
	}
}

func (s *service) mail(to, subject, body string) {
	if !s.mailEnabled {
		return
	}
	if err := s.mailer.Send(to, subject, body); err != nil {
		s.log.Warn("confirmation mail failed", "err", err, "to", to)
	}
}
