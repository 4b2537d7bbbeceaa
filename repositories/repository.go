package repositories

// Repository is the uniform CRUD contract shared by every
// entity-backed table. Specializations add query-shape-specific
// finders on top of it.
type Repository[T any, ID comparable] interface {
	// Save inserts a new row and populates the entity's identifier as
	// assigned by storage.
	Save(entity *T) error
	// Update overwrites the row matched by the entity's id, all fields
	// except the id itself. Returns ErrNotFound when no row matched.
	Update(entity *T) error
	// DeleteByID removes the row matched by id. Returns ErrNotFound
	// when no row matched.
	DeleteByID(id ID) error
	// FindByID returns the matching entity or ErrNotFound.
	FindByID(id ID) (*T, error)
	// FindAll returns every row in storage's natural order.
	FindAll() ([]T, error)
}
