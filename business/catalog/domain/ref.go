// Package domain contains the core domain types for the catalog context.
package domain

import "strconv"

// ItemRef is a soft item identity: either a canonical numeric id or a
// display name that still needs resolution at the API boundary.
type ItemRef struct {
	id   int64
	name string
}

// ItemID creates a reference from a canonical item id.
func ItemID(id int64) ItemRef {
	return ItemRef{id: id}
}

// ItemName creates a reference from a display name.
func ItemName(name string) ItemRef {
	return ItemRef{name: name}
}

// ParseItemRef treats a numeric string as an id and anything else as a name.
func ParseItemRef(s string) ItemRef {
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ItemID(id)
	}
	return ItemName(s)
}

// IsName reports whether the reference still needs a name search.
func (r ItemRef) IsName() bool {
	return r.name != ""
}

// ID returns the numeric id; only meaningful when !IsName().
func (r ItemRef) ID() int64 {
	return r.id
}

// Name returns the display name; only meaningful when IsName().
func (r ItemRef) Name() string {
	return r.name
}

func (r ItemRef) String() string {
	if r.IsName() {
		return r.name
	}
	return strconv.FormatInt(r.id, 10)
}

// RealmRef is a soft realm identity, by connected-realm id or by slug.
type RealmRef struct {
	id   int64
	slug string
}

// RealmID creates a reference from a connected-realm id.
func RealmID(id int64) RealmRef {
	return RealmRef{id: id}
}

// RealmSlug creates a reference from a realm slug or display name.
func RealmSlug(slug string) RealmRef {
	return RealmRef{slug: slug}
}

// ParseRealmRef treats a numeric string as an id and anything else as a slug.
func ParseRealmRef(s string) RealmRef {
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return RealmID(id)
	}
	return RealmSlug(s)
}

// IsSlug reports whether the reference still needs a realm lookup.
func (r RealmRef) IsSlug() bool {
	return r.slug != ""
}

// ID returns the connected-realm id; only meaningful when !IsSlug().
func (r RealmRef) ID() int64 {
	return r.id
}

// Slug returns the realm slug; only meaningful when IsSlug().
func (r RealmRef) Slug() string {
	return r.slug
}

func (r RealmRef) String() string {
	if r.IsSlug() {
		return r.slug
	}
	return strconv.FormatInt(r.id, 10)
}
