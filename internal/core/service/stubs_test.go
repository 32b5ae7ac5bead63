package service

import (
	"context"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

type stubAccountRepo struct {
	byID    map[string]*domain.Account
	findErr error // if set, FindByID returns this error
	calls   int
}

func newStubAccountRepo(accounts ...*domain.Account) *stubAccountRepo {
	r := &stubAccountRepo{byID: make(map[string]*domain.Account)}
	for _, a := range accounts {
		r.byID[a.ID] = a
	}
	return r
}

func (r *stubAccountRepo) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	r.calls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.findErr != nil {
		return nil, r.findErr
	}
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	for _, a := range r.byID {
		if a.Email == email {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) error {
	for _, a := range r.byID {
		if a.Email == account.Email {
			return domain.ErrAccountExists
		}
	}
	clone := *account
	r.byID[account.ID] = &clone
	return nil
}

func (r *stubAccountRepo) Update(_ context.Context, account *domain.Account) error {
	if _, ok := r.byID[account.ID]; !ok {
		return domain.ErrAccountNotFound
	}
	clone := *account
	r.byID[account.ID] = &clone
	return nil
}

func (r *stubAccountRepo) ListByRoles(_ context.Context, roles []string) ([]*domain.Account, error) {
	var out []*domain.Account
	for _, a := range r.byID {
		if slices.Contains(roles, a.Role) {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

// stubOwners is an OwnerLookup over fixed projections.
type stubOwners struct {
	refs    map[domain.ResourceKind]map[string]domain.OwnerRef
	lookErr error
	calls   []domain.ResourceRef
}

func newStubOwners() *stubOwners {
	return &stubOwners{refs: make(map[domain.ResourceKind]map[string]domain.OwnerRef)}
}

func (o *stubOwners) put(ref domain.OwnerRef) {
	if o.refs[ref.Kind] == nil {
		o.refs[ref.Kind] = make(map[string]domain.OwnerRef)
	}
	o.refs[ref.Kind][ref.ID] = ref
}

func (o *stubOwners) LookupOwner(ctx context.Context, kind domain.ResourceKind, id string) (domain.OwnerRef, error) {
	o.calls = append(o.calls, domain.ResourceRef{Kind: kind, ID: id})
	if err := ctx.Err(); err != nil {
		return domain.OwnerRef{}, err
	}
	if o.lookErr != nil {
		return domain.OwnerRef{}, o.lookErr
	}
	ref, ok := o.refs[kind][id]
	if !ok {
		return domain.OwnerRef{}, domain.ErrNotFound
	}
	return ref, nil
}

type stubFarmRepo struct {
	byID map[string]*domain.Farm
}

func newStubFarmRepo(farms ...*domain.Farm) *stubFarmRepo {
	r := &stubFarmRepo{byID: make(map[string]*domain.Farm)}
	for _, f := range farms {
		r.byID[f.ID] = f
	}
	return r
}

func (r *stubFarmRepo) Create(_ context.Context, f *domain.Farm) error {
	clone := *f
	r.byID[f.ID] = &clone
	return nil
}

func (r *stubFarmRepo) FindByID(_ context.Context, id string) (*domain.Farm, error) {
	f, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *f
	return &clone, nil
}

func (r *stubFarmRepo) ListByOwner(_ context.Context, ownerID string) ([]*domain.Farm, error) {
	var out []*domain.Farm
	for _, f := range r.byID {
		if !f.IsActive || (ownerID != "" && f.OwnerID != ownerID) {
			continue
		}
		clone := *f
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubFarmRepo) Update(_ context.Context, f *domain.Farm) error {
	if _, ok := r.byID[f.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *f
	r.byID[f.ID] = &clone
	return nil
}

type stubAnimalRepo struct {
	byID map[string]*domain.Animal
}

func newStubAnimalRepo() *stubAnimalRepo {
	return &stubAnimalRepo{byID: make(map[string]*domain.Animal)}
}

func (r *stubAnimalRepo) Create(_ context.Context, a *domain.Animal) error {
	clone := *a
	r.byID[a.ID] = &clone
	return nil
}

func (r *stubAnimalRepo) FindByID(_ context.Context, id string) (*domain.Animal, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAnimalRepo) ExistsTag(_ context.Context, farmID, tag string) (bool, error) {
	for _, a := range r.byID {
		if a.IsActive && a.FarmID == farmID && a.TagNumber == tag {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubAnimalRepo) ListByFarms(_ context.Context, farmIDs []string, species string) ([]*domain.Animal, error) {
	var out []*domain.Animal
	for _, a := range r.byID {
		if !a.IsActive || !slices.Contains(farmIDs, a.FarmID) || (species != "" && a.Species != species) {
			continue
		}
		clone := *a
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubAnimalRepo) Update(_ context.Context, a *domain.Animal) error {
	if _, ok := r.byID[a.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *a
	r.byID[a.ID] = &clone
	return nil
}

type stubHealthRepo struct {
	byID map[string]*domain.HealthRecord
}

func newStubHealthRepo() *stubHealthRepo {
	return &stubHealthRepo{byID: make(map[string]*domain.HealthRecord)}
}

func (r *stubHealthRepo) Create(_ context.Context, rec *domain.HealthRecord) error {
	clone := *rec
	r.byID[rec.ID] = &clone
	return nil
}

func (r *stubHealthRepo) FindByID(_ context.Context, id string) (*domain.HealthRecord, error) {
	rec, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *rec
	return &clone, nil
}

func (r *stubHealthRepo) ListByAnimal(_ context.Context, animalID string) ([]*domain.HealthRecord, error) {
	var out []*domain.HealthRecord
	for _, rec := range r.byID {
		if rec.AnimalID == animalID {
			clone := *rec
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubHealthRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubCropRepo struct {
	byID map[string]*domain.Crop
}

func newStubCropRepo() *stubCropRepo {
	return &stubCropRepo{byID: make(map[string]*domain.Crop)}
}

func (r *stubCropRepo) Create(_ context.Context, c *domain.Crop) error {
	clone := *c
	r.byID[c.ID] = &clone
	return nil
}

func (r *stubCropRepo) FindByID(_ context.Context, id string) (*domain.Crop, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCropRepo) ListByFarms(_ context.Context, farmIDs []string, status string) ([]*domain.Crop, error) {
	var out []*domain.Crop
	for _, c := range r.byID {
		if !slices.Contains(farmIDs, c.FarmID) || (status != "" && string(c.Status) != status) {
			continue
		}
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubCropRepo) Update(_ context.Context, c *domain.Crop) error {
	if _, ok := r.byID[c.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *c
	r.byID[c.ID] = &clone
	return nil
}

func (r *stubCropRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubSaleRepo struct {
	byID map[string]*domain.Sale
}

func newStubSaleRepo() *stubSaleRepo {
	return &stubSaleRepo{byID: make(map[string]*domain.Sale)}
}

func (r *stubSaleRepo) Create(_ context.Context, s *domain.Sale) error {
	clone := *s
	r.byID[s.ID] = &clone
	return nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, id string) (*domain.Sale, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubSaleRepo) ListByFarmer(_ context.Context, farmerID, paymentStatus string) ([]*domain.Sale, error) {
	var out []*domain.Sale
	for _, s := range r.byID {
		if (farmerID != "" && s.FarmerID != farmerID) || (paymentStatus != "" && string(s.PaymentStatus) != paymentStatus) {
			continue
		}
		clone := *s
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubSaleRepo) Update(_ context.Context, s *domain.Sale) error {
	if _, ok := r.byID[s.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *s
	r.byID[s.ID] = &clone
	return nil
}

func (r *stubSaleRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubContactRepo struct {
	byID map[string]*domain.Contact
}

func newStubContactRepo() *stubContactRepo {
	return &stubContactRepo{byID: make(map[string]*domain.Contact)}
}

func (r *stubContactRepo) Create(_ context.Context, c *domain.Contact) error {
	clone := *c
	r.byID[c.ID] = &clone
	return nil
}

func (r *stubContactRepo) FindByID(_ context.Context, id string) (*domain.Contact, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubContactRepo) ListByOwner(_ context.Context, ownerID string) ([]*domain.Contact, error) {
	var out []*domain.Contact
	for _, c := range r.byID {
		if c.OwnerID == ownerID {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubContactRepo) Update(_ context.Context, c *domain.Contact) error {
	if _, ok := r.byID[c.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *c
	r.byID[c.ID] = &clone
	return nil
}

func (r *stubContactRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubFeedRepo struct {
	byID map[string]*domain.Feed
}

func newStubFeedRepo() *stubFeedRepo {
	return &stubFeedRepo{byID: make(map[string]*domain.Feed)}
}

func (r *stubFeedRepo) Create(_ context.Context, f *domain.Feed) error {
	clone := *f
	r.byID[f.ID] = &clone
	return nil
}

func (r *stubFeedRepo) FindByID(_ context.Context, id string) (*domain.Feed, error) {
	f, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *f
	return &clone, nil
}

func (r *stubFeedRepo) ListByFarms(_ context.Context, farmIDs []string, filter domain.FeedFilter) ([]*domain.Feed, error) {
	var out []*domain.Feed
	for _, f := range r.byID {
		if !slices.Contains(farmIDs, f.FarmID) || !filter.Match(f) {
			continue
		}
		clone := *f
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubFeedRepo) Update(_ context.Context, f *domain.Feed) error {
	if _, ok := r.byID[f.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *f
	r.byID[f.ID] = &clone
	return nil
}

func (r *stubFeedRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubProduceRepo struct {
	byID map[string]*domain.Produce
}

func newStubProduceRepo() *stubProduceRepo {
	return &stubProduceRepo{byID: make(map[string]*domain.Produce)}
}

func (r *stubProduceRepo) Create(_ context.Context, p *domain.Produce) error {
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubProduceRepo) FindByID(_ context.Context, id string) (*domain.Produce, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProduceRepo) ListByOwner(_ context.Context, ownerID, produceType string) ([]*domain.Produce, error) {
	var out []*domain.Produce
	for _, p := range r.byID {
		if p.OwnerID != ownerID || (produceType != "" && p.Type != produceType) {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubProduceRepo) Update(_ context.Context, p *domain.Produce) error {
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubProduceRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// stubIdempotency is an IdempotencyStore over a map.
type stubIdempotency struct {
	keys map[string]string
	err  error
}

func newStubIdempotency() *stubIdempotency {
	return &stubIdempotency{keys: make(map[string]string)}
}

func (s *stubIdempotency) Lookup(_ context.Context, scope, key string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.keys[scope+"|"+key], nil
}

func (s *stubIdempotency) Remember(_ context.Context, scope, key, resourceID string, _ time.Duration) error {
	if s.err != nil {
		return s.err
	}
	s.keys[scope+"|"+key] = resourceID
	return nil
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

const (
	farmerID  = "11111111-1111-4111-8111-111111111111"
	otherID   = "22222222-2222-4222-8222-222222222222"
	vetID     = "33333333-3333-4333-8333-333333333333"
	adminID   = "44444444-4444-4444-8444-444444444444"
	farmID    = "aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa"
	animalID  = "bbbbbbbb-bbbb-4bbb-8bbb-bbbbbbbbbbbb"
	missingID = "cccccccc-cccc-4ccc-8ccc-cccccccccccc"
)

func newAccount(id, role string) *domain.Account {
	return &domain.Account{ID: id, Email: id + "@farmtrak.test", Role: role, FullName: "Test " + role}
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func ptr[T any](v T) *T { return &v }
