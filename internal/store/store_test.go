package store

import (
	"errors"
	"testing"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/signsetu/signsetu/internal/entities"
)

// fakeRepository is an in-memory Repository that counts calls and can be
// forced to fail.
type fakeRepository struct {
	words  map[uint]entities.Word
	nextID uint
	calls  map[string]int

	failWith  error
	createErr error
}

func newFakeRepository(words ...entities.Word) *fakeRepository {
	repo := &fakeRepository{
		words:  make(map[uint]entities.Word),
		nextID: 1,
		calls:  make(map[string]int),
	}
	for _, w := range words {
		w.ID = repo.nextID
		repo.words[w.ID] = w
		repo.nextID++
	}
	return repo
}

func (r *fakeRepository) Create(word *entities.Word) error {
	r.calls["Create"]++
	if r.createErr != nil {
		return r.createErr
	}
	if r.failWith != nil {
		return r.failWith
	}
	word.ID = r.nextID
	r.words[word.ID] = *word
	r.nextID++
	return nil
}

func (r *fakeRepository) All() ([]entities.Word, error) {
	r.calls["All"]++
	if r.failWith != nil {
		return nil, r.failWith
	}
	all := make([]entities.Word, 0, len(r.words))
	for _, w := range r.words {
		all = append(all, w)
	}
	return all, nil
}

func (r *fakeRepository) ByID(id uint) (*entities.Word, error) {
	r.calls["ByID"]++
	if r.failWith != nil {
		return nil, r.failWith
	}
	w, ok := r.words[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &w, nil
}

func (r *fakeRepository) Search(query string) ([]entities.Word, error) {
	r.calls["Search"]++
	if r.failWith != nil {
		return nil, r.failWith
	}
	return []entities.Word{}, nil
}

func (r *fakeRepository) Update(id uint, updates map[string]any) (*entities.Word, error) {
	r.calls["Update"]++
	if r.failWith != nil {
		return nil, r.failWith
	}
	w, ok := r.words[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if def, ok := updates["definition"].(string); ok {
		w.Definition = def
	}
	r.words[id] = w
	return &w, nil
}

func (r *fakeRepository) Delete(id uint) (bool, error) {
	r.calls["Delete"]++
	if r.failWith != nil {
		return false, r.failWith
	}
	if _, ok := r.words[id]; !ok {
		return false, nil
	}
	delete(r.words, id)
	return true, nil
}

func (r *fakeRepository) Related(word *entities.Word, limit int) ([]entities.Word, error) {
	r.calls["Related"]++
	if r.failWith != nil {
		return nil, r.failWith
	}
	return []entities.Word{}, nil
}

func validWord(word string) entities.Word {
	return entities.Word{
		Word:       word,
		Definition: "a definition",
		ImageURL:   "https://example.com/image.jpg",
		VideoURL:   "https://example.com/video.mp4",
	}
}

type testClock struct {
	current time.Time
}

func (c *testClock) now() time.Time {
	return c.current
}

func (c *testClock) advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func newTestStore(repo *fakeRepository) (*CachedWordStore, *testClock) {
	clock := &testClock{current: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	return New(repo, 0).WithClock(clock.now), clock
}

func TestListAll_ServesCachedSnapshotWhileFresh(t *testing.T) {
	repo := newFakeRepository(validWord("hello"), validWord("water"))
	st, clock := newTestStore(repo)

	first, err := st.ListAll()
	require.NoError(t, err)
	assert.Len(t, first, 2)
	assert.Equal(t, 1, repo.calls["All"])

	clock.advance(time.Minute)
	second, err := st.ListAll()
	require.NoError(t, err)
	assert.Len(t, second, 2)
	assert.Equal(t, 1, repo.calls["All"], "fresh snapshot must be served from cache")
}

func TestListAll_RefreshesAfterFreshnessWindow(t *testing.T) {
	repo := newFakeRepository(validWord("hello"))
	st, clock := newTestStore(repo)

	_, err := st.ListAll()
	require.NoError(t, err)

	clock.advance(DefaultFreshness)
	_, err = st.ListAll()
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls["All"])
}

func TestListAll_ReturnsCopy(t *testing.T) {
	repo := newFakeRepository(validWord("hello"))
	st, _ := newTestStore(repo)

	first, err := st.ListAll()
	require.NoError(t, err)
	first[0].Word = "mutated"

	second, err := st.ListAll()
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0].Word)
}

func TestGetByID_CachesFoundRecords(t *testing.T) {
	repo := newFakeRepository(validWord("hello"))
	st, _ := newTestStore(repo)

	word, err := st.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "hello", word.Word)

	_, err = st.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls["ByID"])
}

func TestGetByID_AbsenceIsNeverCached(t *testing.T) {
	repo := newFakeRepository()
	st, _ := newTestStore(repo)

	_, err := st.GetByID(42)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = st.GetByID(42)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 2, repo.calls["ByID"])
}

func TestSharedFreshnessStamp(t *testing.T) {
	repo := newFakeRepository(validWord("hello"))
	st, clock := newTestStore(repo)

	// Populate the per-ID cache first; the snapshot two minutes later must
	// inherit its age, not restart the window.
	_, err := st.GetByID(1)
	require.NoError(t, err)

	clock.advance(2 * time.Minute)
	_, err = st.ListAll()
	require.NoError(t, err)

	clock.advance(3 * time.Minute)
	_, err = st.ListAll()
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls["All"], "snapshot expires with the shared stamp")
}

func TestCreate_ReadAfterWrite(t *testing.T) {
	repo := newFakeRepository(validWord("hello"))
	st, _ := newTestStore(repo)

	_, err := st.ListAll()
	require.NoError(t, err)

	word := validWord("water")
	require.NoError(t, st.Create(&word))

	all, err := st.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, 2, repo.calls["All"], "create must invalidate the snapshot")
}

func TestCreate_ValidatesRequiredFields(t *testing.T) {
	repo := newFakeRepository()
	st, _ := newTestStore(repo)

	cases := []struct {
		name   string
		mutate func(*entities.Word)
	}{
		{"missing word", func(w *entities.Word) { w.Word = "  " }},
		{"missing definition", func(w *entities.Word) { w.Definition = "" }},
		{"missing image url", func(w *entities.Word) { w.ImageURL = "" }},
		{"missing video url", func(w *entities.Word) { w.VideoURL = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			word := validWord("hello")
			tc.mutate(&word)

			err := st.Create(&word)
			assert.True(t, IsValidation(err))
			assert.Equal(t, 0, repo.calls["Create"], "invalid words never reach the repository")
		})
	}
}

func TestCreate_DuplicateWordLeavesCacheUntouched(t *testing.T) {
	repo := newFakeRepository(validWord("hello"))
	st, _ := newTestStore(repo)

	_, err := st.ListAll()
	require.NoError(t, err)

	repo.createErr = sqlite3.Error{
		Code:         sqlite3.ErrConstraint,
		ExtendedCode: sqlite3.ErrConstraintUnique,
	}
	dup := validWord("hello")
	err = st.Create(&dup)
	assert.True(t, IsValidation(err))

	_, err = st.ListAll()
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls["All"], "rejected write must not invalidate")
}

func TestUpdate_InvalidatesCache(t *testing.T) {
	repo := newFakeRepository(validWord("hello"))
	st, _ := newTestStore(repo)

	cached, err := st.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "a definition", cached.Definition)

	_, err = st.Update(1, map[string]any{"definition": "updated"})
	require.NoError(t, err)

	fresh, err := st.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "updated", fresh.Definition)
}

func TestUpdate_MissingWord(t *testing.T) {
	repo := newFakeRepository()
	st, _ := newTestStore(repo)

	_, err := st.Update(42, map[string]any{"definition": "updated"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo := newFakeRepository(validWord("hello"))
	st, _ := newTestStore(repo)

	_, err := st.GetByID(1)
	require.NoError(t, err)

	require.NoError(t, st.Delete(1))

	_, err = st.GetByID(1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_MissingWord(t *testing.T) {
	repo := newFakeRepository()
	st, _ := newTestStore(repo)

	assert.ErrorIs(t, st.Delete(42), ErrNotFound)
}

func TestSearch_AlwaysBypassesCache(t *testing.T) {
	repo := newFakeRepository(validWord("hello"))
	st, _ := newTestStore(repo)

	for i := 0; i < 3; i++ {
		found, err := st.Search("hel")
		require.NoError(t, err)
		assert.NotNil(t, found)
	}
	assert.Equal(t, 3, repo.calls["Search"])
}

func TestRepositoryFailureIsNeverMasked(t *testing.T) {
	repo := newFakeRepository(validWord("hello"))
	st, _ := newTestStore(repo)

	// Warm every cache.
	_, err := st.ListAll()
	require.NoError(t, err)

	repo.failWith = errors.New("disk i/o error")
	// The snapshot is still fresh, so reads keep succeeding from cache.
	_, err = st.ListAll()
	require.NoError(t, err)

	// Uncached paths must surface the failure.
	_, err = st.Search("hel")
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = st.Update(1, map[string]any{"definition": "x"})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Message: "word already exists"}
	assert.Equal(t, "word already exists", err.Error())
	assert.True(t, IsValidation(err))
	assert.False(t, IsValidation(ErrNotFound))
}
