package school

import (
	"context"

	"AtsAssistant/entity"
)

type Core interface {
	Schools(ctx context.Context, sessionID string, criteria entity.FilterCriteria) []entity.School
	Facets() entity.Facets
	School(id string) (entity.School, error)
	SelectSchool(ctx context.Context, sessionID, name string) (*entity.ChatReply, error)
}
