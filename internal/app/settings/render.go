package settings

import (
	"fmt"
	"sort"
	"strings"
)

// Field is a single display row for the settings and stats commands
type Field struct {
	Key   string
	Value string
}

// Fields flattens the settings into sorted display rows. The api key is
// masked so terminal scrollback never holds the credential.
func (s Settings) Fields() []Field {
	rows := []Field{
		{"api_key", mask(s.APIKey)},
		{"app_data_dir", s.AppDataDir},
		{"exclude_words", s.ExcludeWords},
		{"log_level", s.LogLevel},
		{"monitor_enabled", fmt.Sprintf("%t", s.MonitorEnabled)},
		{"monitor_interval", fmt.Sprintf("%d", s.MonitorInterval)},
		{"server_start_time", s.ServerStartTime},
		{"timezone", s.Timezone},
		{"trailer_always_search", fmt.Sprintf("%t", s.TrailerAlwaysSearch)},
		{"trailer_audio_format", s.TrailerAudioFormat},
		{"trailer_audio_volume_level", fmt.Sprintf("%d", s.TrailerAudioVolumeLevel)},
		{"trailer_check_plex", fmt.Sprintf("%t", s.TrailerCheckPlex)},
		{"trailer_embed_metadata", fmt.Sprintf("%t", s.TrailerEmbedMetadata)},
		{"trailer_file_format", s.TrailerFileFormat},
		{"trailer_file_name", s.TrailerFileName},
		{"trailer_folder_movie", fmt.Sprintf("%t", s.TrailerFolderMovie)},
		{"trailer_folder_series", fmt.Sprintf("%t", s.TrailerFolderSeries)},
		{"trailer_max_duration", fmt.Sprintf("%d", s.TrailerMaxDuration)},
		{"trailer_min_duration", fmt.Sprintf("%d", s.TrailerMinDuration)},
		{"trailer_remove_silence", fmt.Sprintf("%t", s.TrailerRemoveSilence)},
		{"trailer_remove_sponsorblocks", fmt.Sprintf("%t", s.TrailerRemoveSponsorblocks)},
		{"trailer_resolution", fmt.Sprintf("%d", s.TrailerResolution)},
		{"trailer_search_query", s.TrailerSearchQuery},
		{"trailer_subtitles_enabled", fmt.Sprintf("%t", s.TrailerSubtitlesEnabled)},
		{"trailer_subtitles_format", s.TrailerSubtitlesFormat},
		{"trailer_subtitles_language", s.TrailerSubtitlesLanguage},
		{"trailer_video_format", s.TrailerVideoFormat},
		{"trailer_web_optimized", fmt.Sprintf("%t", s.TrailerWebOptimized)},
		{"update_available", fmt.Sprintf("%t", s.UpdateAvailable)},
		{"version", s.Version},
		{"wait_for_media", fmt.Sprintf("%t", s.WaitForMedia)},
		{"yt_cookies_path", s.YtCookiesPath},
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })

	return rows
}

// Fields flattens the stats into display rows
func (s ServerStats) Fields() []Field {
	return []Field{
		{"trailers_downloaded", fmt.Sprintf("%d", s.TrailersDownloaded)},
		{"movies_count", fmt.Sprintf("%d", s.MoviesCount)},
		{"movies_monitored", fmt.Sprintf("%d", s.MoviesMonitored)},
		{"series_count", fmt.Sprintf("%d", s.SeriesCount)},
		{"series_monitored", fmt.Sprintf("%d", s.SeriesMonitored)},
	}
}

// RenderFields aligns key/value rows into printable lines
func RenderFields(fields []Field) string {
	maxKey := 0
	for _, f := range fields {
		if len(f.Key) > maxKey {
			maxKey = len(f.Key)
		}
	}

	var b strings.Builder

	for _, f := range fields {
		b.WriteString(f.Key)
		b.WriteString(strings.Repeat(" ", maxKey-len(f.Key)))
		b.WriteString("  ")
		b.WriteString(f.Value)
		b.WriteString("\n")
	}

	return b.String()
}

// mask hides all but the last four characters of a secret
func mask(secret string) string {
	if secret == "" {
		return ""
	}

	if len(secret) <= 4 {
		return strings.Repeat("*", len(secret))
	}

	return strings.Repeat("*", len(secret)-4) + secret[len(secret)-4:]
}
