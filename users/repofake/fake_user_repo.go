package fakeuserrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/jrsteele09/go-auth-gateway/users"
)

var _ users.UserRepo = (*FakeUserRepo)(nil)

// FakeUserRepo is an in-memory user directory. It is the default store for the
// server and the store used by tests.
type FakeUserRepo struct {
	users       map[int]*users.User
	usernameIds map[string]int // username to user id
	lock        sync.RWMutex
}

func NewFakeUserRepo(seed ...*users.User) *FakeUserRepo {
	ur := &FakeUserRepo{
		users:       make(map[int]*users.User),
		usernameIds: make(map[string]int),
	}
	for _, u := range seed {
		ur.Upsert(u)
	}
	return ur
}

// DefaultUsers returns the two reference accounts.
func DefaultUsers() []*users.User {
	return []*users.User{
		{ID: 1, Username: "admin", Password: "password123", Role: users.RoleAdmin},
		{ID: 2, Username: "user", Password: "user123", Role: users.RoleUser},
	}
}

func (ur *FakeUserRepo) Upsert(user *users.User) {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	if existing, ok := ur.users[user.ID]; ok {
		delete(ur.usernameIds, existing.Username)
	}
	u := *user
	ur.users[u.ID] = &u
	ur.usernameIds[u.Username] = u.ID
}

func (ur *FakeUserRepo) Delete(id int) {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	if u, ok := ur.users[id]; ok {
		delete(ur.usernameIds, u.Username)
		delete(ur.users, id)
	}
}

func (ur *FakeUserRepo) GetByUsername(_ context.Context, username string) (*users.User, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	id, ok := ur.usernameIds[username]
	if !ok {
		return nil, users.ErrNotFound
	}
	u := *ur.users[id]
	return &u, nil
}

func (ur *FakeUserRepo) GetByID(_ context.Context, id int) (*users.User, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	u, ok := ur.users[id]
	if !ok {
		return nil, users.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (ur *FakeUserRepo) List(_ context.Context) ([]*users.User, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	userList := make([]*users.User, 0, len(ur.users))
	for _, v := range ur.users {
		u := *v
		userList = append(userList, &u)
	}

	sort.Slice(userList, func(i, j int) bool {
		return userList[i].ID < userList[j].ID
	})
	return userList, nil
}
