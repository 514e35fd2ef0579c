package impl

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"padelpoint/internal/domain/entity"
	"padelpoint/internal/domain/repository"
	mockRepo "padelpoint/internal/mocks/repository"
)

func TestRoleService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("renames with trimmed name", func(t *testing.T) {
		repo := mockRepo.NewMockRoleRepository(t)
		srv := NewRoleService(RoleServiceParams{RoleRepo: repo, Logger: discardLogger()})
		repo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.Role{ID: 3, Name: "seller"}, nil)
		repo.EXPECT().Update(ctx, mock.MatchedBy(func(role *entity.Role) bool {
			return role.ID == 3 && role.Name == "vendor"
		})).Return(nil)

		role, err := srv.Update(ctx, 3, "  vendor ")
		require.NoError(t, err)
		assert.Equal(t, "vendor", role.Name)
	})

	t.Run("missing role", func(t *testing.T) {
		repo := mockRepo.NewMockRoleRepository(t)
		srv := NewRoleService(RoleServiceParams{RoleRepo: repo, Logger: discardLogger()})
		repo.EXPECT().FindByID(ctx, int64(9)).Return(nil, repository.ErrRoleNotFound)

		_, err := srv.Update(ctx, 9, "vendor")
		assert.Equal(t, http.StatusNotFound, httpCodeOf(err))
		assert.Equal(t, "The role with id '9' was not found", messageOf(err))
	})
}

func TestRoleService_List(t *testing.T) {
	ctx := context.Background()
	repo := mockRepo.NewMockRoleRepository(t)
	srv := NewRoleService(RoleServiceParams{RoleRepo: repo, Logger: discardLogger()})
	repo.EXPECT().List(ctx).Return([]*entity.Role{{ID: 1, Name: entity.RoleNameAdmin}, {ID: 2, Name: entity.RoleNameUser}}, nil)

	roles, err := srv.List(ctx)
	require.NoError(t, err)
	assert.Len(t, roles, 2)
}
