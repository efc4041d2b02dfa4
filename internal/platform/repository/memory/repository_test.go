package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testEntity struct {
	ID   string
	Name string
}

func (e *testEntity) GetID() string {
	return e.ID
}

type RepositoryTestSuite struct {
	suite.Suite
	repo *Repository[*testEntity]
	ctx  context.Context
}

func (s *RepositoryTestSuite) SetupTest() {
	s.repo = New[*testEntity]()
	s.ctx = context.Background()
}

func (s *RepositoryTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *RepositoryTestSuite) save(id, name string) {
	s.Require().NoError(s.repo.Save(s.ctx, &testEntity{ID: id, Name: name}))
}

func (s *RepositoryTestSuite) TestNew() {
	repo := New[*testEntity]()

	s.Require().NotNil(repo)
	s.Require().NotNil(repo.items)
	s.Assert().Empty(repo.items)
}

func (s *RepositoryTestSuite) TestSave() {
	tests := []struct {
		name          string
		setup         func()
		entity        *testEntity
		expectedError error
		expectedName  string
	}{
		{
			name:         "successful_save",
			setup:        func() {},
			entity:       &testEntity{ID: "a", Name: "first"},
			expectedName: "first",
		},
		{
			name:          "entity_already_exists",
			setup:         func() { s.save("a", "existing") },
			entity:        &testEntity{ID: "a", Name: "replacement"},
			expectedError: ErrAlreadyExists,
			expectedName:  "existing",
		},
		{
			name:         "unicode_id",
			setup:        func() {},
			entity:       &testEntity{ID: "пациент-🌟", Name: "unicode"},
			expectedName: "unicode",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			tt.setup()

			err := s.repo.Save(s.ctx, tt.entity)

			if tt.expectedError != nil {
				s.Assert().ErrorIs(err, tt.expectedError)
			} else {
				s.Assert().NoError(err)
			}
			s.Assert().Equal(tt.expectedName, s.repo.items[tt.entity.ID].Name)
		})
	}
}

func (s *RepositoryTestSuite) TestGetByID() {
	s.save("a", "first")

	got, err := s.repo.GetByID(s.ctx, "a")
	s.Require().NoError(err)
	s.Assert().Equal("first", got.Name)

	got, err = s.repo.GetByID(s.ctx, "missing")
	s.Assert().ErrorIs(err, ErrNotFound)
	s.Assert().Nil(got)
}

func (s *RepositoryTestSuite) TestDelete() {
	s.save("a", "first")

	s.Require().NoError(s.repo.Delete(s.ctx, "a"))
	s.Assert().ErrorIs(s.repo.Delete(s.ctx, "a"), ErrNotFound)

	_, err := s.repo.GetByID(s.ctx, "a")
	s.Assert().ErrorIs(err, ErrNotFound)
}

func (s *RepositoryTestSuite) TestDeleteFunc() {
	s.save("a", "stale")
	s.save("b", "fresh")
	s.save("c", "stale")

	removed, err := s.repo.DeleteFunc(s.ctx, func(e *testEntity) bool { return e.Name == "stale" })

	s.Require().NoError(err)
	s.Assert().Equal(2, removed)

	count, err := s.repo.Count(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal(1, count)

	_, err = s.repo.GetByID(s.ctx, "b")
	s.Assert().NoError(err)
}

func (s *RepositoryTestSuite) TestCancelledContext() {
	s.save("a", "stale")

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	removed, err := s.repo.DeleteFunc(ctx, func(*testEntity) bool { return true })
	s.Assert().ErrorIs(err, context.Canceled)
	s.Assert().Zero(removed)

	s.Assert().ErrorIs(s.repo.Save(ctx, &testEntity{ID: "b"}), context.Canceled)
	s.Assert().ErrorIs(s.repo.Delete(ctx, "a"), context.Canceled)
	_, err = s.repo.GetByID(ctx, "a")
	s.Assert().ErrorIs(err, context.Canceled)
	_, err = s.repo.Count(ctx)
	s.Assert().ErrorIs(err, context.Canceled)

	count, _ := s.repo.Count(s.ctx)
	s.Assert().Equal(1, count)
}

func (s *RepositoryTestSuite) TestConcurrentAccess() {
	const workers = 20
	const perWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := fmt.Sprintf("%d-%d", w, i)
				_ = s.repo.Save(s.ctx, &testEntity{ID: id, Name: "n"})
				_, _ = s.repo.GetByID(s.ctx, id)
				if i%2 == 0 {
					_ = s.repo.Delete(s.ctx, id)
				}
			}
		}(w)
	}
	wg.Wait()

	count, err := s.repo.Count(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal(workers*perWorker/2, count)
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
