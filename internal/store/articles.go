package store

import (
	"sync"
	"time"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// ArticleStore is plain single-entity storage for knowledge-base articles.
type ArticleStore struct {
	mu       sync.RWMutex
	articles map[int]*domain.Article
	order    []int
	nextID   int
}

// NewArticleStore creates an empty article store.
func NewArticleStore() *ArticleStore {
	return &ArticleStore{
		articles: make(map[int]*domain.Article),
		nextID:   1,
	}
}

// Create inserts an article with the next id.
func (s *ArticleStore) Create(article *domain.Article) *domain.Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	article.ID = s.nextID
	article.CreatedAt = time.Now()
	s.articles[article.ID] = article
	s.order = append(s.order, article.ID)
	s.nextID++
	return article
}

// Get looks up an article by id.
func (s *ArticleStore) Get(id int) (*domain.Article, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	article, ok := s.articles[id]
	return article, ok
}

// Update replaces title and body for an existing article.
func (s *ArticleStore) Update(id int, title, body string) (*domain.Article, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	article, ok := s.articles[id]
	if !ok {
		return nil, false
	}
	article.Title = title
	article.Body = body
	return article, true
}

// Delete removes an article.
func (s *ArticleStore) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.articles[id]; !ok {
		return false
	}
	delete(s.articles, id)
	for i, ordered := range s.order {
		if ordered == id {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// List returns all articles in insertion order.
func (s *ArticleStore) List() []*domain.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	articles := make([]*domain.Article, 0, len(s.order))
	for _, id := range s.order {
		if article, ok := s.articles[id]; ok {
			articles = append(articles, article)
		}
	}
	return articles
}
