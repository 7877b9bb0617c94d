package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/grenade-guide/internal/logger"
	"github.com/sbilibin2017/grenade-guide/internal/repositories"
)

// ExportVideos renders the video list for a map and grenade pair as a
// plain-text report suitable for a file download. The layout is fixed:
// a header with the display names, the export timestamp and the count,
// then one numbered block per video.
func (s *CatalogService) ExportVideos(ctx context.Context, mapID, grenadeID uuid.UUID) ([]byte, error) {
	m, err := s.maps.GetByID(ctx, mapID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMapDoesNotExist
		}
		logger.Log.Errorw("failed to get map for export", "map_id", mapID, "error", err)
		return nil, err
	}

	g, err := s.grenades.GetByID(ctx, grenadeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGrenadeDoesNotExist
		}
		logger.Log.Errorw("failed to get grenade for export", "grenade_id", grenadeID, "error", err)
		return nil, err
	}

	videos, err := s.videoReader.ListByMapAndGrenade(ctx, mapID, grenadeID)
	if err != nil {
		logger.Log.Errorw("failed to list videos for export", "map_id", mapID, "grenade_id", grenadeID, "error", err)
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Grenade lineup videos\n")
	fmt.Fprintf(&b, "Map: %s\n", m.DisplayName)
	fmt.Fprintf(&b, "Grenade: %s\n", g.DisplayName)
	fmt.Fprintf(&b, "Exported: %s\n", time.Now().UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "Videos: %d\n", len(videos))

	// Author names are resolved once per distinct author.
	authors := make(map[uuid.UUID]string)

	for i, v := range videos {
		name, ok := authors[v.AuthorID]
		if !ok {
			name = "unknown"
			if user, err := s.users.GetByID(ctx, v.AuthorID); err == nil {
				name = user.Username
			}
			authors[v.AuthorID] = name
		}

		fmt.Fprintf(&b, "\n%d. %s\n", i+1, v.Title)
		fmt.Fprintf(&b, "   URL: %s\n", v.VideoURL)
		if v.Description != nil && *v.Description != "" {
			fmt.Fprintf(&b, "   Description: %s\n", *v.Description)
		}
		fmt.Fprintf(&b, "   Author: %s\n", name)
		fmt.Fprintf(&b, "   Added: %s\n", v.CreatedAt.UTC().Format("2006-01-02"))
	}

	return []byte(b.String()), nil
}
