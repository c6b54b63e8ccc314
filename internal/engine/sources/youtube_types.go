package sources

// --- channels.list ---

type channelsResp struct {
	Items []struct {
		ContentDetails *struct {
			RelatedPlaylists *struct {
				Uploads string `json:"uploads"`
			} `json:"relatedPlaylists"`
		} `json:"contentDetails"`
	} `json:"items"`
}

// uploadsID returns items[0].contentDetails.relatedPlaylists.uploads or "".
func (r *channelsResp) uploadsID() string {
	if len(r.Items) == 0 {
		return ""
	}
	cd := r.Items[0].ContentDetails
	if cd == nil || cd.RelatedPlaylists == nil {
		return ""
	}
	return cd.RelatedPlaylists.Uploads
}

// --- playlistItems.list ---

type playlistItemsResp struct {
	NextPageToken string             `json:"nextPageToken"`
	Items         []playlistItemWrap `json:"items"`
}

type playlistItemWrap struct {
	Snippet *struct {
		Title       string `json:"title"`
		PublishedAt string `json:"publishedAt"`
	} `json:"snippet"`
	ContentDetails *struct {
		VideoID          string `json:"videoId"`
		VideoPublishedAt string `json:"videoPublishedAt"`
	} `json:"contentDetails"`
}

// --- search.list ---

type searchResp struct {
	NextPageToken string       `json:"nextPageToken"`
	Items         []searchItem `json:"items"`
}

type searchItem struct {
	ID *struct {
		VideoID string `json:"videoId"`
	} `json:"id"`
	Snippet *itemSnippet `json:"snippet"`
}

// --- videos.list ---

type videosResp struct {
	Items []videoItem `json:"items"`
}

type videoItem struct {
	ID             string       `json:"id"`
	Snippet        *itemSnippet `json:"snippet"`
	ContentDetails *struct {
		Duration string `json:"duration"`
	} `json:"contentDetails"`
}

type itemSnippet struct {
	Title       string `json:"title"`
	PublishedAt string `json:"publishedAt"`
}

func (s *itemSnippet) fields() (title, publishedAt string) {
	if s == nil {
		return "", ""
	}
	return s.Title, s.PublishedAt
}
