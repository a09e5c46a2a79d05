package entities

import (
	"regexp"
	"time"

	"gorm.io/gorm"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

type VideoType string

const (
	VideoTypeYouTube VideoType = "youtube"
	VideoTypeDirect  VideoType = "direct"
	VideoTypeOther   VideoType = "other"
)

type EnrichmentStatus string

const (
	EnrichmentStatusPending  EnrichmentStatus = "pending"
	EnrichmentStatusEnriched EnrichmentStatus = "enriched"
	EnrichmentStatusFailed   EnrichmentStatus = "failed"
)

// DefaultCategory is applied when a word is created without a category.
const DefaultCategory = "general"

// Word is a dictionary entry for a sign: the word itself plus the media
// showing how to sign it.
type Word struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Word       string     `gorm:"uniqueIndex;size:256" json:"word"`
	Definition string     `gorm:"size:2048" json:"definition"`
	ImageURL   string     `gorm:"size:2048" json:"image_url"`
	VideoURL   string     `gorm:"size:2048" json:"video_url"`
	VideoType  VideoType  `gorm:"size:20;default:youtube" json:"video_type"`
	VideoID    string     `gorm:"size:20" json:"video_id,omitempty"`
	Category   string     `gorm:"index;size:100;default:general" json:"category"`
	Difficulty Difficulty `gorm:"index;size:20;default:beginner" json:"difficulty"`

	EnrichmentStatus EnrichmentStatus `gorm:"index;size:20;default:pending" json:"enrichment_status"`
	EnrichmentError  string           `gorm:"size:1024" json:"enrichment_error,omitempty"`
	Definitions      []WordDefinition `gorm:"foreignKey:WordID" json:"definitions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// WordDefinition is a dictionary definition fetched during enrichment.
type WordDefinition struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	WordID        uint   `gorm:"index" json:"word_id"`
	PartOfSpeech  string `gorm:"size:50" json:"part_of_speech"`
	Definition    string `gorm:"size:2048" json:"definition"`
	Example       string `gorm:"size:2048" json:"example,omitempty"`
	Pronunciation string `gorm:"size:100" json:"pronunciation,omitempty"`
	AudioURL      string `gorm:"size:2048" json:"audio_url,omitempty"`
	Source        string `gorm:"size:50" json:"source"`
}

// youtubeIDPattern matches the 11-character video ID in the common YouTube
// URL forms (watch?v=, youtu.be/, embed/, v/).
var youtubeIDPattern = regexp.MustCompile(`(?:youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?/]+)`)

// ExtractYouTubeID returns the video ID from a YouTube URL, or "" if the URL
// does not carry one.
func ExtractYouTubeID(url string) string {
	match := youtubeIDPattern.FindStringSubmatch(url)
	if match == nil || len(match[1]) != 11 {
		return ""
	}
	return match[1]
}

// BeforeSave extracts the YouTube video ID so clients can embed the player
// without re-parsing the URL.
func (w *Word) BeforeSave(tx *gorm.DB) error {
	if w.VideoType == VideoTypeYouTube && w.VideoURL != "" {
		w.VideoID = ExtractYouTubeID(w.VideoURL)
	}
	return nil
}

// EmbeddedVideoURL returns the URL to use in an embedded player.
func (w *Word) EmbeddedVideoURL() string {
	if w.VideoType == VideoTypeYouTube && w.VideoID != "" {
		return "https://www.youtube.com/embed/" + w.VideoID
	}
	return w.VideoURL
}

// VideoThumbnailURL returns a thumbnail for the word's video, or "" when no
// thumbnail service is available for the video type.
func (w *Word) VideoThumbnailURL() string {
	if w.VideoType == VideoTypeYouTube && w.VideoID != "" {
		return "https://img.youtube.com/vi/" + w.VideoID + "/mqdefault.jpg"
	}
	return ""
}
