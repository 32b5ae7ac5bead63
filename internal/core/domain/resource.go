package domain

// ResourceKind names a type of owned resource.
type ResourceKind string

const (
	KindFarm         ResourceKind = "farm"
	KindAnimal       ResourceKind = "animal"
	KindCrop         ResourceKind = "crop"
	KindSale         ResourceKind = "sale"
	KindContact      ResourceKind = "contact"
	KindHealthRecord ResourceKind = "health_record"
	KindFeed         ResourceKind = "feed"
	KindProduce      ResourceKind = "produce"
)

// ResourceRef identifies a resource a request wants to act on.
type ResourceRef struct {
	Kind ResourceKind
	ID   string
}

// OwnerRef is the owner-relevant projection of a stored resource. Exactly one
// of OwnerID and FarmID is set: a direct owner, or a parent farm whose owner
// is accountable.
type OwnerRef struct {
	Kind    ResourceKind
	ID      string
	OwnerID string
	FarmID  string
}

// Direct reports whether the resource names its owner without a parent hop.
func (o OwnerRef) Direct() bool {
	return o.OwnerID != ""
}
