package resources

import "context"

// Repo loads the learning-resource table.
type Repo interface {
	ListAll(ctx context.Context) ([]Resource, error)
}

// MemoryRepo serves a fixed in-memory resource table.
type MemoryRepo struct {
	Resources []Resource
}

func NewMemoryRepo(resources []Resource) *MemoryRepo {
	return &MemoryRepo{Resources: resources}
}

func (r *MemoryRepo) ListAll(ctx context.Context) ([]Resource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]Resource(nil), r.Resources...), nil
}
