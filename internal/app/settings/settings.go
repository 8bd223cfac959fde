package settings

// Settings mirrors the server's settings response. Shapes only; the
// server owns validation and persistence.
type Settings struct {
	APIKey          string `json:"api_key"`
	AppDataDir      string `json:"app_data_dir"`
	ExcludeWords    string `json:"exclude_words"`
	Version         string `json:"version"`
	ServerStartTime string `json:"server_start_time"`
	Timezone        string `json:"timezone"`
	LogLevel        string `json:"log_level"`

	MonitorEnabled  bool `json:"monitor_enabled"`
	MonitorInterval int  `json:"monitor_interval"`

	TrailerFolderMovie         bool   `json:"trailer_folder_movie"`
	TrailerFolderSeries        bool   `json:"trailer_folder_series"`
	TrailerResolution          int    `json:"trailer_resolution"`
	TrailerFileName            string `json:"trailer_file_name"`
	TrailerFileFormat          string `json:"trailer_file_format"`
	TrailerAlwaysSearch        bool   `json:"trailer_always_search"`
	TrailerSearchQuery         string `json:"trailer_search_query"`
	TrailerAudioFormat         string `json:"trailer_audio_format"`
	TrailerAudioVolumeLevel    int    `json:"trailer_audio_volume_level"`
	TrailerVideoFormat         string `json:"trailer_video_format"`
	TrailerSubtitlesEnabled    bool   `json:"trailer_subtitles_enabled"`
	TrailerSubtitlesFormat     string `json:"trailer_subtitles_format"`
	TrailerSubtitlesLanguage   string `json:"trailer_subtitles_language"`
	TrailerCheckPlex           bool   `json:"trailer_check_plex"`
	TrailerEmbedMetadata       bool   `json:"trailer_embed_metadata"`
	TrailerMinDuration         int    `json:"trailer_min_duration"`
	TrailerMaxDuration         int    `json:"trailer_max_duration"`
	TrailerRemoveSponsorblocks bool   `json:"trailer_remove_sponsorblocks"`
	TrailerRemoveSilence       bool   `json:"trailer_remove_silence"`
	TrailerWebOptimized        bool   `json:"trailer_web_optimized"`

	UpdateAvailable bool   `json:"update_available"`
	WaitForMedia    bool   `json:"wait_for_media"`
	YtCookiesPath   string `json:"yt_cookies_path"`
}

// ServerStats mirrors the server's statistics response
type ServerStats struct {
	TrailersDownloaded int `json:"trailers_downloaded"`
	MoviesCount        int `json:"movies_count"`
	MoviesMonitored    int `json:"movies_monitored"`
	SeriesCount        int `json:"series_count"`
	SeriesMonitored    int `json:"series_monitored"`
}
