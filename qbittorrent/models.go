package qbittorrent

// File priorities as reported by /torrents/files.
const (
	PriorityDoNotDownload = 0
	PriorityNormal        = 1
)

// Torrent is one entry of the torrents info listing.
type Torrent struct {
	Name     string
	SavePath string
	Hash     string
}

// EpisodeFile is one file of a torrent with its completion in [0, 1].
type EpisodeFile struct {
	Name     string
	Progress float64
	Priority int
}

// torrentInfo mirrors the daemon payload. Pointers let the validator tell a
// missing field apart from an empty one.
type torrentInfo struct {
	Name     *string `json:"name" validate:"required"`
	SavePath *string `json:"save_path" validate:"required"`
	Hash     *string `json:"hash" validate:"required"`
}

func (t torrentInfo) toTorrent() Torrent {
	return Torrent{
		Name:     *t.Name,
		SavePath: *t.SavePath,
		Hash:     *t.Hash,
	}
}

type fileInfo struct {
	Name     *string  `json:"name" validate:"required"`
	Progress *float64 `json:"progress" validate:"required"`
	Priority *int     `json:"priority"`
}

func (f fileInfo) toEpisodeFile() EpisodeFile {
	priority := PriorityNormal
	if f.Priority != nil {
		priority = *f.Priority
	}
	return EpisodeFile{
		Name:     *f.Name,
		Progress: *f.Progress,
		Priority: priority,
	}
}
