package fakeuserrepo_test

import (
	"context"
	"testing"

	"github.com/jrsteele09/go-auth-gateway/users"
	fakeuserrepo "github.com/jrsteele09/go-auth-gateway/users/repofake"
	"github.com/stretchr/testify/require"
)

func TestFakeUserRepo(t *testing.T) {
	ctx := context.Background()
	repo := fakeuserrepo.NewFakeUserRepo(fakeuserrepo.DefaultUsers()...)

	t.Run("get by username", func(t *testing.T) {
		u, err := repo.GetByUsername(ctx, "admin")
		require.NoError(t, err)
		require.Equal(t, 1, u.ID)
		require.Equal(t, users.RoleAdmin, u.Role)
	})

	t.Run("get by id", func(t *testing.T) {
		u, err := repo.GetByID(ctx, 2)
		require.NoError(t, err)
		require.Equal(t, "user", u.Username)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := repo.GetByUsername(ctx, "ghost")
		require.ErrorIs(t, err, users.ErrNotFound)
		_, err = repo.GetByID(ctx, 99)
		require.ErrorIs(t, err, users.ErrNotFound)
	})

	t.Run("list is ordered by id", func(t *testing.T) {
		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, 1, list[0].ID)
		require.Equal(t, 2, list[1].ID)
	})

	t.Run("returned records are copies", func(t *testing.T) {
		u, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		u.Role = users.RoleUser

		again, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, users.RoleAdmin, again.Role)
	})

	t.Run("upsert renames", func(t *testing.T) {
		r := fakeuserrepo.NewFakeUserRepo(&users.User{ID: 5, Username: "old", Role: users.RoleUser})
		r.Upsert(&users.User{ID: 5, Username: "new", Role: users.RoleUser})
		_, err := r.GetByUsername(ctx, "old")
		require.ErrorIs(t, err, users.ErrNotFound)
		_, err = r.GetByUsername(ctx, "new")
		require.NoError(t, err)
	})

	t.Run("delete", func(t *testing.T) {
		r := fakeuserrepo.NewFakeUserRepo(fakeuserrepo.DefaultUsers()...)
		r.Delete(1)
		_, err := r.GetByID(ctx, 1)
		require.ErrorIs(t, err, users.ErrNotFound)
		_, err = r.GetByUsername(ctx, "admin")
		require.ErrorIs(t, err, users.ErrNotFound)
	})
}
