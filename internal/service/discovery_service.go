package service

import (
	"context"
	"math/rand"
	"net/url"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/projecthub-backend/internal/discovery"
	"github.com/ignatzorin/projecthub-backend/internal/logger"
	"github.com/ignatzorin/projecthub-backend/internal/metrics"
	"github.com/ignatzorin/projecthub-backend/internal/models"
	"github.com/ignatzorin/projecthub-backend/internal/pkg/apperror"
	"github.com/ignatzorin/projecthub-backend/internal/repository"
)

// События, публикуемые подписчикам сессии.
const (
	EventDiscoveryUpdated = "discovery.updated"
	EventDiscoveryClosed  = "discovery.closed"
)

// Операции над состоянием фильтра (метка метрик и логов).
const (
	OpSetText     = "set_text"
	OpSetStatus   = "set_status"
	OpSetCategory = "set_category"
	OpToggleSkill = "toggle_skill"
	OpClearAll    = "clear_all"
)

const (
	defaultLocationPath  = "/projects"
	defaultFeaturedCount = 3
	sessionLockStripes   = 64
)

// Publisher доставляет события подписчикам сессии (WebSocket хаб).
type Publisher interface {
	PublishToSession(sessionID uuid.UUID, event string, data any) error
}

// ProjectFinder ищет проект в постоянном хранилище.
type ProjectFinder interface {
	GetByID(ctx context.Context, id string) (*models.Project, error)
}

// SessionView — состояние сессии поиска и согласованный с ним результат.
type SessionView struct {
	SessionID uuid.UUID             `json:"session_id"`
	Filters   discovery.FilterState `json:"filters"`
	Query     string                `json:"query"`
	Location  string                `json:"location"`
	Total     int                   `json:"total"`
	Projects  []models.Project      `json:"projects"`
}

// SearchResult — результат поиска без сессии.
type SearchResult struct {
	Filters  discovery.FilterState `json:"filters"`
	Query    string                `json:"query"`
	Location string                `json:"location"`
	Total    int                   `json:"total"`
	Projects []models.Project      `json:"projects"`
}

// DiscoveryOptions — необязательные параметры сервиса.
type DiscoveryOptions struct {
	// LocationPath — путь страницы проектов в адресе, которым делятся.
	LocationPath string
	// FeaturedSeed — seed генератора для подборки проектов.
	FeaturedSeed int64
	// Projects отдаёт записи, которых нет в загруженном каталоге
	// (например, добавленные через seed после старта).
	Projects ProjectFinder
}

// DiscoveryService обслуживает сессии поиска проектов.
// Состояние сессии хранится только как сериализованная строка запроса; на каждую
// операцию движок восстанавливается из неё, изменяется и сериализуется обратно.
type DiscoveryService struct {
	catalog      *discovery.Catalog
	sessions     repository.SessionRepository
	publisher    Publisher
	projects     ProjectFinder
	metrics      *metrics.Discovery
	locationPath string
	log          *logrus.Entry

	// Операции одной сессии выполняются строго последовательно.
	locks [sessionLockStripes]sync.Mutex

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewDiscoveryService создаёт сервис. publisher и m могут быть nil.
func NewDiscoveryService(
	catalog *discovery.Catalog,
	sessions repository.SessionRepository,
	publisher Publisher,
	m *metrics.Discovery,
	opts DiscoveryOptions,
) *DiscoveryService {
	if opts.LocationPath == "" {
		opts.LocationPath = defaultLocationPath
	}
	return &DiscoveryService{
		catalog:      catalog,
		sessions:     sessions,
		publisher:    publisher,
		projects:     opts.Projects,
		metrics:      m,
		locationPath: opts.LocationPath,
		log:          logger.WithComponent("discovery"),
		rng:          rand.New(rand.NewSource(opts.FeaturedSeed)),
	}
}

// StartSession открывает сессию; начальное состояние читается из адреса или строки запроса.
func (s *DiscoveryService) StartSession(ctx context.Context, rawQuery string) (*SessionView, error) {
	id := uuid.New()
	engine := discovery.NewEngine(s.catalog, discovery.ParseValues(rawQuery), nil)

	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	if err := s.sessions.Save(ctx, id, engine.QueryString()); err != nil {
		return nil, err
	}

	s.metrics.SessionStarted()
	s.log.WithFields(logrus.Fields{
		"session_id": id,
		"query":      engine.QueryString(),
	}).Debug("discovery session started")

	return s.view(id, engine.Snapshot()), nil
}

// GetSession возвращает текущее состояние сессии.
func (s *DiscoveryService) GetSession(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	engine, err := s.restore(ctx, id, nil)
	if err != nil {
		return nil, err
	}
	return s.view(id, engine.Snapshot()), nil
}

// SetText задаёт текстовый поиск.
func (s *DiscoveryService) SetText(ctx context.Context, id uuid.UUID, query string) (*SessionView, error) {
	return s.mutate(ctx, id, OpSetText, func(e *discovery.Engine) { e.SetText(query) })
}

// SetStatus задаёт селектор статуса.
func (s *DiscoveryService) SetStatus(ctx context.Context, id uuid.UUID, status string) (*SessionView, error) {
	return s.mutate(ctx, id, OpSetStatus, func(e *discovery.Engine) { e.SetStatus(status) })
}

// SetCategory задаёт селектор категории.
func (s *DiscoveryService) SetCategory(ctx context.Context, id uuid.UUID, category string) (*SessionView, error) {
	return s.mutate(ctx, id, OpSetCategory, func(e *discovery.Engine) { e.SetCategory(category) })
}

// ToggleSkill добавляет или убирает навык.
func (s *DiscoveryService) ToggleSkill(ctx context.Context, id uuid.UUID, skill string) (*SessionView, error) {
	return s.mutate(ctx, id, OpToggleSkill, func(e *discovery.Engine) { e.ToggleSkill(skill) })
}

// ClearAll сбрасывает фильтры сессии.
func (s *DiscoveryService) ClearAll(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	return s.mutate(ctx, id, OpClearAll, func(e *discovery.Engine) { e.ClearAll() })
}

// EndSession закрывает сессию и уведомляет подписчиков.
func (s *DiscoveryService) EndSession(ctx context.Context, id uuid.UUID) error {
	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	if _, err := s.sessions.Load(ctx, id); err != nil {
		return err
	}
	if err := s.sessions.Delete(ctx, id); err != nil {
		return err
	}

	s.metrics.SessionEnded()
	s.publish(id, EventDiscoveryClosed, map[string]any{"session_id": id})
	return nil
}

// Search фильтрует каталог по параметрам запроса без создания сессии.
func (s *DiscoveryService) Search(_ context.Context, values url.Values) *SearchResult {
	engine := discovery.NewEngine(s.catalog, values, nil)
	snap := engine.Snapshot()
	s.metrics.ObserveSearch(len(snap.Results))

	return &SearchResult{
		Filters:  snap.State,
		Query:    discovery.EncodeQuery(snap.State),
		Location: discovery.Location(s.locationPath, snap.State),
		Total:    len(snap.Results),
		Projects: snap.Results,
	}
}

// GetProject возвращает проект каталога, при промахе обращаясь к хранилищу.
func (s *DiscoveryService) GetProject(ctx context.Context, id string) (*models.Project, error) {
	if project, ok := s.catalog.Project(id); ok {
		return &project, nil
	}
	if s.projects == nil {
		return nil, apperror.ErrProjectNotFound
	}
	return s.projects.GetByID(ctx, id)
}

// Featured возвращает случайную подборку проектов.
func (s *DiscoveryService) Featured(_ context.Context, count int) []models.Project {
	if count <= 0 {
		count = defaultFeaturedCount
	}
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.catalog.Featured(s.rng, count)
}

// Categories возвращает словарь категорий каталога.
func (s *DiscoveryService) Categories() []string {
	return s.catalog.Categories()
}

// Skills возвращает навыки, встречающиеся в каталоге.
func (s *DiscoveryService) Skills() []string {
	return s.catalog.Skills()
}

func (s *DiscoveryService) mutate(ctx context.Context, id uuid.UUID, op string, apply func(*discovery.Engine)) (*SessionView, error) {
	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	var changed *discovery.Snapshot
	engine, err := s.restore(ctx, id, discovery.ListenerFunc(func(snap discovery.Snapshot) {
		changed = &snap
	}))
	if err != nil {
		return nil, err
	}

	apply(engine)
	snap := engine.Snapshot()
	if changed != nil {
		snap = *changed
	}

	query := discovery.EncodeQuery(snap.State)
	if err := s.sessions.Save(ctx, id, query); err != nil {
		return nil, err
	}

	s.metrics.ObserveMutation(op, len(snap.Results))
	s.log.WithFields(logrus.Fields{
		"session_id": id,
		"op":         op,
		"query":      query,
		"total":      len(snap.Results),
	}).Debug("discovery filter changed")

	view := s.view(id, snap)
	s.publish(id, EventDiscoveryUpdated, view)
	return view, nil
}

func (s *DiscoveryService) restore(ctx context.Context, id uuid.UUID, listener discovery.Listener) (*discovery.Engine, error) {
	query, err := s.sessions.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return discovery.NewEngine(s.catalog, discovery.ParseValues(query), listener), nil
}

func (s *DiscoveryService) view(id uuid.UUID, snap discovery.Snapshot) *SessionView {
	return &SessionView{
		SessionID: id,
		Filters:   snap.State,
		Query:     discovery.EncodeQuery(snap.State),
		Location:  discovery.Location(s.locationPath, snap.State),
		Total:     len(snap.Results),
		Projects:  snap.Results,
	}
}

func (s *DiscoveryService) publish(id uuid.UUID, event string, data any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishToSession(id, event, data); err != nil {
		s.log.WithError(err).WithField("session_id", id).Warn("не удалось отправить событие сессии")
	}
}

func (s *DiscoveryService) lockFor(id uuid.UUID) *sync.Mutex {
	return &s.locks[int(id[15])%sessionLockStripes]
}
