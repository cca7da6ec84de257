package podcasts

import "github.com/castkeep/catalog-api/internal/models"

// Summary is the external projection of a podcast: the storage-native
// `image` column becomes the externally visible `imageUrl`. It is also
// the shape embedded inside episode payloads.
type Summary struct {
	ID       uint    `json:"id"`
	Title    string  `json:"title"`
	ImageURL *string `json:"imageUrl"`
}

// ListItem is the list-view projection: a Summary annotated with the
// podcast's episode count.
type ListItem struct {
	Summary
	EpisodeCount int64 `json:"episodeCount"`
}

// ToSummary projects a podcast row into its external shape
func ToSummary(podcast *models.Podcast) *Summary {
	if podcast == nil {
		return nil
	}
	return &Summary{
		ID:       podcast.ID,
		Title:    podcast.Title,
		ImageURL: podcast.Image,
	}
}

// ToListItem projects a count-annotated podcast row into its list shape
func ToListItem(row PodcastWithCount) ListItem {
	return ListItem{
		Summary:      *ToSummary(&row.Podcast),
		EpisodeCount: row.EpisodeCount,
	}
}
