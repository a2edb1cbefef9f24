package services

import (
	"context"
	"sync"

	"KitStoreAPI/internal/catalog"
	"KitStoreAPI/internal/model"
)

// CatalogStore persists management-screen catalog snapshots.
type CatalogStore interface {
	LoadAll(ctx context.Context) ([]model.Product, error)
	ReplaceAll(ctx context.Context, products []model.Product) error
}

// CatalogService wraps the selection controller for the store
// management screen. The controller owns the working state; every
// mutation is followed by a snapshot write-back.
type CatalogService struct {
	mu     sync.Mutex
	ctl    *catalog.Controller
	store  CatalogStore
	loaded bool
}

func NewCatalogService(store CatalogStore, policy catalog.MissPolicy) *CatalogService {
	return &CatalogService{
		ctl:   catalog.NewController(policy),
		store: store,
	}
}

// ensureLoaded pulls the stored catalog on first touch. Caller must
// hold s.mu.
func (s *CatalogService) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	if s.store != nil {
		products, err := s.store.LoadAll(ctx)
		if err != nil {
			return err
		}
		s.ctl.Load(products)
	}
	s.loaded = true
	return nil
}

func (s *CatalogService) persist(ctx context.Context) {
	if s.store == nil {
		return
	}
	if err := s.store.ReplaceAll(ctx, s.ctl.Products()); err != nil {
		logger.Warn().Err(err).Msg("catalog snapshot write failed")
	}
}

// View is what the management grid renders: the catalog plus which
// rows are currently selected.
type CatalogView struct {
	Products  []model.Product `json:"products"`
	Selection []int64         `json:"selection"`
}

func (s *CatalogService) view() CatalogView {
	products := s.ctl.Products()
	if products == nil {
		products = []model.Product{}
	}
	selection := s.ctl.Selection()
	if selection == nil {
		selection = []int64{}
	}
	return CatalogView{Products: products, Selection: selection}
}

func (s *CatalogService) Get(ctx context.Context) (CatalogView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return CatalogView{}, err
	}
	return s.view(), nil
}

func (s *CatalogService) Add(ctx context.Context) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return model.Product{}, err
	}
	p := s.ctl.Add()
	s.persist(ctx)
	return p, nil
}

// Edit rewrites one product; missed carries the id back when it
// matched nothing and the miss policy says to report.
func (s *CatalogService) Edit(ctx context.Context, id int64) (CatalogView, []int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return CatalogView{}, nil, err
	}
	missed := s.ctl.Edit(id)
	if len(missed) > 0 {
		logger.Debug().Int64("id", id).Msg("edit on unknown product")
	}
	s.persist(ctx)
	return s.view(), missed, nil
}

func (s *CatalogService) EditAll(ctx context.Context) (CatalogView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return CatalogView{}, err
	}
	s.ctl.EditAll()
	s.persist(ctx)
	return s.view(), nil
}

func (s *CatalogService) ToggleSelect(ctx context.Context, id int64) (CatalogView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return CatalogView{}, err
	}
	s.ctl.ToggleSelect(id)
	return s.view(), nil
}

func (s *CatalogService) DeleteSelected(ctx context.Context) (CatalogView, []int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return CatalogView{}, nil, err
	}
	removed, missed := s.ctl.DeleteSelected()
	if len(missed) > 0 {
		logger.Debug().Ints64("ids", missed).Msg("delete-selected had unknown ids")
	}
	if len(removed) > 0 {
		s.persist(ctx)
	}
	return s.view(), missed, nil
}

func (s *CatalogService) DeleteAll(ctx context.Context) (CatalogView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return CatalogView{}, err
	}
	s.ctl.DeleteAll()
	s.persist(ctx)
	return s.view(), nil
}
