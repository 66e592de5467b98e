// Package service runs the per-category load cycle: fetch from the NASA API,
// render, and write the result into a session's display regions.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"space/explorer/internal/client"
	"space/explorer/internal/domain"
	"space/explorer/internal/localization"
	"space/explorer/internal/repository"
	"space/explorer/internal/state"
	"space/explorer/internal/view"

	"golang.org/x/sync/errgroup"

	log "github.com/sirupsen/logrus"
)

const (
	apodBatchSize     = 12
	galleryBatchSize  = 20
	imageSearchLimit  = 12
	asteroidWindow    = 7 * 24 * time.Hour
	defaultRover      = "curiosity"
	defaultRoverSol   = 1000
	outcomeSaveBudget = 5 * time.Second
)

var errEmptyQuery = errors.New("empty search query")

// RenderTarget is the set of named display regions a load writes into.
type RenderTarget interface {
	Show(id string) error
	Hide(id string) error
	Write(id, markup string) error
}

// Session identifies one dashboard visitor and its regions.
type Session struct {
	ID     string
	Target RenderTarget
}

type Service struct {
	client     client.NASAClient
	languages  state.LanguageStore
	outcomes   repository.OutcomeRepository
	tr         *localization.Translator
	archiveURL string
	now        func() time.Time
}

func NewService(
	client client.NASAClient,
	languages state.LanguageStore,
	outcomes repository.OutcomeRepository,
	tr *localization.Translator,
	archiveURL string,
) *Service {
	if outcomes == nil {
		outcomes = repository.NewNopOutcomeRepository()
	}
	return &Service{
		client:     client,
		languages:  languages,
		outcomes:   outcomes,
		tr:         tr,
		archiveURL: archiveURL,
		now:        time.Now,
	}
}

// SetClock replaces the time source used for date windows and outcome timestamps.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

func (s *Service) Translator() *localization.Translator {
	return s.tr
}

// load drives one category through Loading -> Success | Failure. The loading
// indicator is hidden on every path and errors never leave this function.
func load[T any](
	ctx context.Context,
	s *Service,
	sess Session,
	category domain.Category,
	fetch func(ctx context.Context) (T, error),
	render func(T) view.Node,
) domain.LoadOutcome {
	started := s.now()
	regions := regionWriter{target: sess.Target, session: sess.ID}

	outcome := func() domain.LoadOutcome {
		loading, results := category.LoadingRegion(), category.ResultsRegion()

		regions.show(loading)
		regions.hide(results)
		defer regions.hide(loading)

		data, err := fetch(ctx)
		if err != nil {
			regions.write(results, view.Render(view.ErrorBox(s.failureMessage(err))))
			regions.show(results)
			return domain.LoadOutcome{Category: category, Status: domain.LoadStatusFailure, Error: err.Error()}
		}

		regions.write(results, view.Render(render(data)))
		regions.show(results)
		return domain.LoadOutcome{Category: category, Status: domain.LoadStatusSuccess}
	}()

	outcome.FinishedAt = s.now()
	outcome.Duration = outcome.FinishedAt.Sub(started)
	s.record(ctx, sess, outcome)
	return outcome
}

func (s *Service) failureMessage(err error) string {
	if errors.Is(err, errEmptyQuery) {
		return s.tr.T("SearchEmpty")
	}

	reason := err.Error()
	var reqErr *client.RequestError
	if errors.As(err, &reqErr) {
		switch {
		case reqErr.Message != "":
			reason = reqErr.Message
		case reqErr.Err != nil:
			reason = reqErr.Err.Error()
		}
	}
	return s.tr.T("RequestFailed", map[string]any{"Reason": reason})
}

func (s *Service) record(ctx context.Context, sess Session, outcome domain.LoadOutcome) {
	entry := log.WithFields(log.Fields{
		"category": outcome.Category,
		"session":  sess.ID,
		"took":     outcome.Duration.Round(time.Millisecond),
	})
	if outcome.Status == domain.LoadStatusSuccess {
		entry.Infof("✅ Loaded %s", outcome.Category.GetCategoryName())
	} else {
		entry.Warnf("❌ Failed to load %s: %s", outcome.Category.GetCategoryName(), outcome.Error)
	}

	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), outcomeSaveBudget)
	defer cancel()
	if err := s.outcomes.SaveOutcome(saveCtx, sess.ID, outcome); err != nil {
		log.Errorf("❌ Failed to record load outcome: %v", err)
	}
}

// LoadAPOD loads the picture of the day and renders it in lang.
func (s *Service) LoadAPOD(ctx context.Context, sess Session, lang domain.Language) domain.LoadOutcome {
	return load(ctx, s, sess, domain.CategoryAPOD, s.client.GetAPOD,
		func(a *domain.APOD) view.Node { return view.APOD(a, lang, s.tr) })
}

// LoadMultipleAPOD loads a batch of pictures into the APOD region.
func (s *Service) LoadMultipleAPOD(ctx context.Context, sess Session) domain.LoadOutcome {
	return load(ctx, s, sess, domain.CategoryAPOD,
		func(ctx context.Context) ([]domain.APOD, error) { return s.client.GetAPODBatch(ctx, apodBatchSize) },
		func(list []domain.APOD) view.Node { return view.APODGallery(list, s.tr) })
}

func (s *Service) LoadGallery(ctx context.Context, sess Session) domain.LoadOutcome {
	return load(ctx, s, sess, domain.CategoryGallery,
		func(ctx context.Context) ([]domain.APOD, error) { return s.client.GetAPODBatch(ctx, galleryBatchSize) },
		func(list []domain.APOD) view.Node { return view.APODGallery(list, s.tr) })
}

// LoadAsteroids loads near-earth objects for the seven days ending today.
func (s *Service) LoadAsteroids(ctx context.Context, sess Session) domain.LoadOutcome {
	end := s.now()
	start := end.Add(-asteroidWindow)
	return load(ctx, s, sess, domain.CategoryAsteroids,
		func(ctx context.Context) (*domain.AsteroidFeed, error) { return s.client.GetAsteroids(ctx, start, end) },
		func(feed *domain.AsteroidFeed) view.Node { return view.Asteroids(feed, s.tr) })
}

func (s *Service) LoadMarsWeather(ctx context.Context, sess Session) domain.LoadOutcome {
	return load(ctx, s, sess, domain.CategoryMars, s.client.GetMarsWeather,
		func(w *domain.MarsWeather) view.Node { return view.MarsWeather(w, s.tr) })
}

func (s *Service) LoadEPIC(ctx context.Context, sess Session) domain.LoadOutcome {
	return load(ctx, s, sess, domain.CategoryEPIC, s.client.GetEPIC,
		func(images []domain.EPICImage) view.Node { return view.EPIC(images, s.archiveURL, s.tr) })
}

func (s *Service) LoadRoverPhotos(ctx context.Context, sess Session) domain.LoadOutcome {
	return load(ctx, s, sess, domain.CategoryRover,
		func(ctx context.Context) (*domain.RoverPhotos, error) {
			return s.client.GetRoverPhotos(ctx, defaultRover, defaultRoverSol)
		},
		func(p *domain.RoverPhotos) view.Node { return view.RoverPhotos(p, s.tr) })
}

func (s *Service) LoadStats(ctx context.Context, sess Session) domain.LoadOutcome {
	return load(ctx, s, sess, domain.CategoryStats, s.client.GetCacheStats,
		func(st *domain.CacheStats) view.Node { return view.CacheStats(st, s.tr) })
}

// LoadImageCategories shows the topic picker. Nothing is fetched.
func (s *Service) LoadImageCategories(ctx context.Context, sess Session) domain.LoadOutcome {
	return load(ctx, s, sess, domain.CategoryImages,
		func(context.Context) (struct{}, error) { return struct{}{}, nil },
		func(struct{}) view.Node { return view.ImageCategories(s.tr) })
}

func (s *Service) LoadImagesByCategory(ctx context.Context, sess Session, category string) domain.LoadOutcome {
	category = strings.TrimSpace(category)
	return load(ctx, s, sess, domain.CategoryImages,
		func(ctx context.Context) (*domain.ImageCollection, error) {
			return s.client.SearchImages(ctx, category, imageSearchLimit)
		},
		func(res *domain.ImageCollection) view.Node { return view.ImagesByCategory(res, category, s.tr) })
}

// SearchImages runs a free-text search. A blank query is rejected inline
// without contacting the API.
func (s *Service) SearchImages(ctx context.Context, sess Session, query string) domain.LoadOutcome {
	query = strings.TrimSpace(query)
	if query == "" {
		return load(ctx, s, sess, domain.CategoryImages,
			func(context.Context) (struct{}, error) { return struct{}{}, errEmptyQuery },
			func(struct{}) view.Node { return nil })
	}
	return load(ctx, s, sess, domain.CategoryImages,
		func(ctx context.Context) (*domain.ImageCollection, error) {
			return s.client.SearchImages(ctx, query, imageSearchLimit)
		},
		func(res *domain.ImageCollection) view.Node { return view.SearchResults(res, query, s.tr) })
}

func (s *Service) LoadAssetDetails(ctx context.Context, sess Session, nasaID string) domain.LoadOutcome {
	return load(ctx, s, sess, domain.CategoryImages,
		func(ctx context.Context) (*domain.ImageCollection, error) { return s.client.GetAssetDetails(ctx, nasaID) },
		func(res *domain.ImageCollection) view.Node { return view.AssetDetails(res, s.tr) })
}

// LoadAll runs the APOD, asteroid, Mars, EPIC and rover loads concurrently and
// waits for all of them. A failed load never cancels the others.
func (s *Service) LoadAll(ctx context.Context, sess Session) []domain.LoadOutcome {
	lang, err := s.languages.Get(ctx, sess.ID)
	if err != nil {
		log.Warnf("⚠️ Falling back to primary language: %v", err)
		lang = domain.LanguagePrimary
	}

	loaders := []func(context.Context, Session) domain.LoadOutcome{
		func(ctx context.Context, sess Session) domain.LoadOutcome { return s.LoadAPOD(ctx, sess, lang) },
		s.LoadAsteroids,
		s.LoadMarsWeather,
		s.LoadEPIC,
		s.LoadRoverPhotos,
	}

	outcomes := make([]domain.LoadOutcome, len(loaders))
	errGroup := new(errgroup.Group)
	for i, loader := range loaders {
		errGroup.Go(func() error {
			outcomes[i] = loader(ctx, sess)
			return nil
		})
	}
	_ = errGroup.Wait()

	failed := 0
	for _, o := range outcomes {
		if o.Status == domain.LoadStatusFailure {
			failed++
		}
	}
	log.WithField("session", sess.ID).Infof("✅ Completed load of all categories (%d/%d failed)", failed, len(outcomes))

	return outcomes
}

// ToggleAPODLanguage flips the session's language and reloads the APOD.
func (s *Service) ToggleAPODLanguage(ctx context.Context, sess Session) (domain.Language, domain.LoadOutcome, error) {
	lang, err := s.languages.Toggle(ctx, sess.ID)
	if err != nil {
		return "", domain.LoadOutcome{}, fmt.Errorf("failed to toggle language: %w", err)
	}
	log.WithField("session", sess.ID).Infof("🌐 APOD language set to %s", lang)
	return lang, s.LoadAPOD(ctx, sess, lang), nil
}

// LoadCurrentAPOD loads the APOD in the session's stored language.
func (s *Service) LoadCurrentAPOD(ctx context.Context, sess Session) domain.LoadOutcome {
	lang, err := s.languages.Get(ctx, sess.ID)
	if err != nil {
		log.Warnf("⚠️ Falling back to primary language: %v", err)
		lang = domain.LanguagePrimary
	}
	return s.LoadAPOD(ctx, sess, lang)
}

type regionWriter struct {
	target  RenderTarget
	session string
}

func (r regionWriter) show(id string) { r.check("show", id, r.target.Show(id)) }

func (r regionWriter) hide(id string) { r.check("hide", id, r.target.Hide(id)) }

func (r regionWriter) write(id, markup string) { r.check("write", id, r.target.Write(id, markup)) }

func (r regionWriter) check(op, id string, err error) {
	if err != nil {
		log.WithFields(log.Fields{"session": r.session, "region": id}).Errorf("❌ Failed to %s region: %v", op, err)
	}
}
