package words

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/signsetu/signsetu/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_words_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Word{},
		&entities.WordDefinition{},
	)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func makeWord(word, category string) *entities.Word {
	return &entities.Word{
		Word:       word,
		Definition: "definition of " + word,
		ImageURL:   "https://example.com/" + word + ".jpg",
		VideoURL:   "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		VideoType:  entities.VideoTypeYouTube,
		Category:   category,
	}
}

func TestRepository_Create(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	word := makeWord("  Namaste  ", "greeting")
	err := repo.Create(word)

	require.NoError(t, err)
	assert.NotZero(t, word.ID)
	assert.Equal(t, "Namaste", word.Word)
	assert.Equal(t, "dQw4w9WgXcQ", word.VideoID)
}

func TestRepository_Create_DuplicateWordFails(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Create(makeWord("Namaste", "greeting")))

	err := repo.Create(makeWord("Namaste", "culture"))
	assert.Error(t, err)
}

func TestRepository_All_SortedAlphabetically(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Create(makeWord("Yoga", "practice")))
	require.NoError(t, repo.Create(makeWord("Chai", "food")))
	require.NoError(t, repo.Create(makeWord("Namaste", "greeting")))

	all, err := repo.All()

	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Chai", all[0].Word)
	assert.Equal(t, "Namaste", all[1].Word)
	assert.Equal(t, "Yoga", all[2].Word)
}

func TestRepository_ByID(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created := makeWord("Diwali", "culture")
	require.NoError(t, repo.Create(created))

	word, err := repo.ByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Diwali", word.Word)

	_, err = repo.ByID(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_Search(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Create(makeWord("Namaste", "greeting")))
	require.NoError(t, repo.Create(makeWord("Chai", "food")))

	t.Run("matches word case-insensitively", func(t *testing.T) {
		found, err := repo.Search("nama")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Namaste", found[0].Word)
	})

	t.Run("matches definition", func(t *testing.T) {
		found, err := repo.Search("definition of Chai")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Chai", found[0].Word)
	})

	t.Run("no match yields empty list", func(t *testing.T) {
		found, err := repo.Search("xylophone")
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestRepository_Update(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created := makeWord("Yoga", "practice")
	require.NoError(t, repo.Create(created))

	updated, err := repo.Update(created.ID, map[string]any{
		"definition": "an ancient practice",
		"difficulty": string(entities.DifficultyAdvanced),
	})

	require.NoError(t, err)
	assert.Equal(t, "an ancient practice", updated.Definition)
	assert.Equal(t, entities.DifficultyAdvanced, updated.Difficulty)
	assert.Equal(t, "Yoga", updated.Word)
}

func TestRepository_Update_MissingWord(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Update(9999, map[string]any{"definition": "x"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_Delete(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created := makeWord("Cricket", "sport")
	require.NoError(t, repo.Create(created))
	require.NoError(t, repo.SaveDefinitions(created.ID, []entities.WordDefinition{
		{PartOfSpeech: "noun", Definition: "a bat-and-ball game", Source: "freedictionary"},
	}))

	found, err := repo.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, found)

	_, err = repo.ByID(created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var definitions []entities.WordDefinition
	require.NoError(t, repo.db.Where("word_id = ?", created.ID).Find(&definitions).Error)
	assert.Empty(t, definitions)
}

func TestRepository_Delete_MissingWord(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	found, err := repo.Delete(9999)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRepository_Related(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	target := makeWord("Namaste", "greeting")
	require.NoError(t, repo.Create(target))
	require.NoError(t, repo.Create(makeWord("Namaskar", "greeting")))
	require.NoError(t, repo.Create(makeWord("Hello", "greeting")))
	require.NoError(t, repo.Create(makeWord("Chai", "food")))

	related, err := repo.Related(target, 3)

	require.NoError(t, err)
	require.Len(t, related, 2)
	for _, w := range related {
		assert.NotEqual(t, target.ID, w.ID)
		assert.NotEqual(t, "Chai", w.Word)
	}
}

func TestRepository_Related_Limit(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	target := makeWord("Namaste", "greeting")
	require.NoError(t, repo.Create(target))
	require.NoError(t, repo.Create(makeWord("Aarti", "greeting")))
	require.NoError(t, repo.Create(makeWord("Hello", "greeting")))
	require.NoError(t, repo.Create(makeWord("Pranam", "greeting")))
	require.NoError(t, repo.Create(makeWord("Salaam", "greeting")))

	related, err := repo.Related(target, 3)

	require.NoError(t, err)
	assert.Len(t, related, 3)
}

func TestRepository_Pending(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	pending := makeWord("Chai", "food")
	require.NoError(t, repo.Create(pending))

	enriched := makeWord("Yoga", "practice")
	require.NoError(t, repo.Create(enriched))
	require.NoError(t, repo.UpdateEnrichmentStatus(enriched.ID, entities.EnrichmentStatusEnriched, ""))

	words, err := repo.Pending(10)

	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "Chai", words[0].Word)
}

func TestRepository_SaveDefinitions_ReplacesExisting(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created := makeWord("Chai", "food")
	require.NoError(t, repo.Create(created))

	require.NoError(t, repo.SaveDefinitions(created.ID, []entities.WordDefinition{
		{PartOfSpeech: "noun", Definition: "spiced tea", Source: "freedictionary"},
		{PartOfSpeech: "noun", Definition: "a hot beverage", Source: "freedictionary"},
	}))
	require.NoError(t, repo.SaveDefinitions(created.ID, []entities.WordDefinition{
		{PartOfSpeech: "noun", Definition: "tea with milk and spices", Source: "freedictionary"},
	}))

	word, err := repo.ByID(created.ID)
	require.NoError(t, err)
	require.Len(t, word.Definitions, 1)
	assert.Equal(t, "tea with milk and spices", word.Definitions[0].Definition)
}

func TestRepository_UpdateEnrichmentStatus(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created := makeWord("Chai", "food")
	require.NoError(t, repo.Create(created))

	require.NoError(t, repo.UpdateEnrichmentStatus(created.ID, entities.EnrichmentStatusFailed, "lookup timed out"))

	word, err := repo.ByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.EnrichmentStatusFailed, word.EnrichmentStatus)
	assert.Equal(t, "lookup timed out", word.EnrichmentError)
}
