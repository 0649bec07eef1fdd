package usecase_test

import (
	"context"
	"sync"

	"github.com/theanasiqbal/Upfox-Property/internal/adapters/memory"
	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
)

type recordingPublisher struct {
	mu        sync.Mutex
	submitted []domain.Property
	changed   []port.PropertyStatusChangedEvent
	viewed    []string
	err       error
}

func (p *recordingPublisher) PublishSubmitted(_ context.Context, property domain.Property) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.submitted = append(p.submitted, property)
	return p.err
}

func (p *recordingPublisher) PublishStatusChanged(_ context.Context, event port.PropertyStatusChangedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.changed = append(p.changed, event)
	return p.err
}

func (p *recordingPublisher) PublishViewed(_ context.Context, propertyID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.viewed = append(p.viewed, propertyID)
	return p.err
}

// slowRepository не успевает сохранить объявление до отмены контекста.
type slowRepository struct {
	*memory.PropertyRepository
}

func (r slowRepository) Insert(ctx context.Context, p domain.Property) error {
	<-ctx.Done()
	return ctx.Err()
}

type fixture struct {
	properties *memory.PropertyRepository
	users      *memory.UserRepository
	inquiries  *memory.InquiryRepository
	favorites  *memory.FavoritesRepository
	drafts     *memory.DraftStore
	events     *recordingPublisher
}

func newFixture() *fixture {
	return &fixture{
		properties: memory.NewPropertyRepository(memory.SeedProperties()...),
		users:      memory.NewUserRepository(memory.SeedUsers()...),
		inquiries:  memory.NewInquiryRepository(memory.SeedInquiries()...),
		favorites:  memory.NewFavoritesRepository(memory.SeedFavorites()...),
		drafts:     memory.NewDraftStore(),
		events:     &recordingPublisher{},
	}
}

func ids(props []domain.Property) []string {
	out := make([]string, 0, len(props))
	for _, p := range props {
		out = append(out, p.ID)
	}
	return out
}
