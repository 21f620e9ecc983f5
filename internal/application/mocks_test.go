package application

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/ericfisherdev/tasktracker/internal/domain/model"
	"github.com/ericfisherdev/tasktracker/internal/domain/port/driven"
)

// --- Mock implementations of driven ports ---

type mockTaskStore struct {
	tasks  map[int64]model.Task
	nextID int64
}

func newMockTaskStore() *mockTaskStore {
	return &mockTaskStore{tasks: map[int64]model.Task{}}
}

func (m *mockTaskStore) Add(_ context.Context, title, description string) (model.Task, error) {
	m.nextID++
	task := model.Task{ID: m.nextID, Title: title, Description: description}
	m.tasks[task.ID] = task
	return task, nil
}

func (m *mockTaskStore) Get(_ context.Context, id int64) (*model.Task, error) {
	task, ok := m.tasks[id]
	if !ok {
		return nil, nil
	}
	return &task, nil
}

func (m *mockTaskStore) List(_ context.Context) ([]model.Task, error) {
	var out []model.Task
	for _, task := range m.tasks {
		out = append(out, task)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockTaskStore) Update(_ context.Context, id int64, description string, completed bool) error {
	task, ok := m.tasks[id]
	if !ok {
		return fmt.Errorf("update task %d: %w", id, driven.ErrTaskNotFound)
	}
	task.Description = description
	task.Completed = completed
	m.tasks[id] = task
	return nil
}

func (m *mockTaskStore) Delete(_ context.Context, id int64) error {
	if _, ok := m.tasks[id]; !ok {
		return fmt.Errorf("delete task %d: %w", id, driven.ErrTaskNotFound)
	}
	delete(m.tasks, id)
	return nil
}

type mockUserStore struct {
	users    map[string]model.User
	countErr error
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: map[string]model.User{}}
}

func (m *mockUserStore) Add(_ context.Context, username, passwordHash string) (model.User, error) {
	if _, ok := m.users[username]; ok {
		return model.User{}, fmt.Errorf("add user %s: %w", username, driven.ErrDuplicateUsername)
	}
	user := model.User{ID: int64(len(m.users) + 1), Username: username, PasswordHash: passwordHash}
	m.users[username] = user
	return user, nil
}

func (m *mockUserStore) GetByUsername(_ context.Context, username string) (*model.User, error) {
	user, ok := m.users[username]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (m *mockUserStore) SetPasswordHash(_ context.Context, username, passwordHash string) error {
	user, ok := m.users[username]
	if !ok {
		return driven.ErrUserNotFound
	}
	user.PasswordHash = passwordHash
	m.users[username] = user
	return nil
}

func (m *mockUserStore) Count(_ context.Context) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return len(m.users), nil
}

type mockSessionStore struct {
	session *model.Session
	loadErr error
}

func (m *mockSessionStore) Load(_ context.Context) (*model.Session, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.session, nil
}

func (m *mockSessionStore) Save(_ context.Context, session model.Session) error {
	m.session = &session
	return nil
}

func (m *mockSessionStore) Clear(_ context.Context) (bool, error) {
	existed := m.session != nil || m.loadErr != nil
	m.session = nil
	m.loadErr = nil
	return existed, nil
}

type mockMigrator struct {
	calls int
	err   error
}

func (m *mockMigrator) Migrate(_ context.Context) error {
	m.calls++
	return m.err
}

// fakeHasher prefixes plaintext so tests can read digests. "legacy:" digests
// verify but ask to be rehashed, standing in for old SHA-256 rows.
type fakeHasher struct{}

func (fakeHasher) Hash(plaintext string) (string, error) {
	return "hashed:" + plaintext, nil
}

func (fakeHasher) Verify(digest, plaintext string) bool {
	return digest == "hashed:"+plaintext || digest == "legacy:"+plaintext
}

func (fakeHasher) NeedsRehash(digest string) bool {
	return strings.HasPrefix(digest, "legacy:")
}

// --- Helper functions ---

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
