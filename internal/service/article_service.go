package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/events"
	"github.com/spec-kit/helpdesk/internal/store"
	apperrors "github.com/spec-kit/helpdesk/pkg/util"
)

// ArticleService manages knowledge-base articles, including conversion of
// tickets into articles.
type ArticleService struct {
	articles   *store.ArticleStore
	tickets    *store.Store[*domain.Ticket]
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewArticleService creates the service.
func NewArticleService(articles *store.ArticleStore, tickets *store.Store[*domain.Ticket], dispatcher events.Dispatcher, logger *zap.Logger) *ArticleService {
	return &ArticleService{
		articles:   articles,
		tickets:    tickets,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Create adds a hand-written article.
func (s *ArticleService) Create(ctx context.Context, title, body string, actor *domain.User) (*domain.Article, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.NewInvalidInput("title required", nil)
	}
	article := s.articles.Create(&domain.Article{
		Title:  strings.TrimSpace(title),
		Body:   body,
		Author: actor.Name,
	})
	s.publishCreated(ctx, article, actor)
	return article, nil
}

// ConvertTicket turns an active ticket into an article. The body collects
// the requester line and every internal note so the knowledge survives the
// ticket's eventual resolution.
func (s *ArticleService) ConvertTicket(ctx context.Context, ticketID int, actor *domain.User) (*domain.Article, error) {
	ticket, ok := s.tickets.Get(ticketID)
	if !ok {
		return nil, apperrors.NewNotFound("ticket", map[string]any{"id": ticketID})
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Reported by %s (help topic: %s).\n", ticket.Requester, ticket.HelpTopic)
	for _, note := range ticket.Notes() {
		fmt.Fprintf(&body, "\n[%s] %s", note.Author, note.Text)
	}

	sourceID := ticket.ItemID()
	article := s.articles.Create(&domain.Article{
		Title:          ticket.Subject,
		Body:           body.String(),
		Author:         actor.Name,
		SourceTicketID: &sourceID,
	})
	s.publishCreated(ctx, article, actor)
	return article, nil
}

// List returns all articles in insertion order.
func (s *ArticleService) List() []*domain.Article {
	return s.articles.List()
}

// Get looks up one article.
func (s *ArticleService) Get(id int) (*domain.Article, error) {
	article, ok := s.articles.Get(id)
	if !ok {
		return nil, apperrors.NewNotFound("article", map[string]any{"id": id})
	}
	return article, nil
}

func (s *ArticleService) publishCreated(ctx context.Context, article *domain.Article, actor *domain.User) {
	publishEvent(ctx, s.dispatcher, s.logger, events.Event{
		Type:  events.EventArticleCreated,
		Actor: eventActor(actor),
		Payload: events.ArticleCreatedPayload{
			ArticleID:      article.ID,
			Title:          article.Title,
			SourceTicketID: article.SourceTicketID,
		},
	})
}
