package cli

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ourstory-app/ourstory/internal/common"
	"github.com/ourstory-app/ourstory/internal/journal"
)

// Add interactively builds a new record and applies it optimistically.
func (a *App) Add(ctx context.Context) error {
	r := journal.Record{ID: journal.NewID()}
	if err := a.promptRecord(&r); err != nil {
		return err
	}

	if err := a.promptImage(ctx, &r); err != nil {
		a.println("Image upload failed:", err)
	}

	if err := a.svc.AddRecord(ctx, r); err != nil {
		return err
	}
	a.println("Added", r.ID)
	return nil
}

// Edit re-prompts every field of an existing record; blank keeps the
// current value.
func (a *App) Edit(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: edit <id>")
		return nil
	}

	r, ok := a.svc.State().Record(args[0])
	if !ok {
		return common.ErrorNotFound
	}
	if err := a.promptRecord(&r); err != nil {
		return err
	}

	if err := a.svc.UpdateRecord(ctx, r); err != nil {
		return err
	}
	a.println("Updated", r.ID)
	return nil
}

func (a *App) promptRecord(r *journal.Record) error {
	title, err := GetTextWithDefault(a.reader, "Title", r.Title, a.out)
	if err != nil {
		return err
	}
	r.Title = title

	dateStr, err := GetTextWithDefault(a.reader, "Date (YYYY-MM-DD)", r.Date.String(), a.out)
	if err != nil {
		return err
	}
	date, err := journal.ParseDate(dateStr)
	if err != nil {
		return err
	}
	r.Date = date

	endDef := ""
	if r.EndDate != nil {
		endDef = r.EndDate.String()
	}
	endStr, err := GetTextWithDefault(a.reader, "End date (blank for single day)", endDef, a.out)
	if err != nil {
		return err
	}
	if endStr == "" {
		r.EndDate = nil
	} else {
		end, err := journal.ParseDate(endStr)
		if err != nil {
			return err
		}
		r.EndDate = &end
	}

	if r.Location, err = GetTextWithDefault(a.reader, "Location (City, Country)", r.Location, a.out); err != nil {
		return err
	}
	if r.Description, err = GetTextWithDefault(a.reader, "Notes", r.Description, a.out); err != nil {
		return err
	}

	catStr, err := GetTextWithDefault(a.reader,
		fmt.Sprintf("Category %v", journal.Categories()), r.Category.String(), a.out)
	if err != nil {
		return err
	}
	cat, err := journal.ParseCategory(catStr)
	if err != nil {
		return err
	}
	r.Category = cat

	r.Trip = nil
	r.Cinema = nil
	switch cat {
	case journal.CategoryTrip:
		kmStr, err := GetSimpleText(a.reader, "Distance (km)", a.out)
		if err != nil {
			return err
		}
		km, err := strconv.ParseFloat(kmStr, 64)
		if err != nil {
			return err
		}
		r.Trip = &journal.TripInfo{DistanceKM: km}

	case journal.CategoryCinema:
		movie, err := GetSimpleText(a.reader, "Movie", a.out)
		if err != nil {
			return err
		}
		her, err := a.promptRating("Her rating (1-5)")
		if err != nil {
			return err
		}
		him, err := a.promptRating("His rating (1-5)")
		if err != nil {
			return err
		}
		r.Cinema = &journal.CinemaInfo{Movie: movie, RatingHer: her, RatingHim: him}
	}

	return r.Validate()
}

func (a *App) promptRating(prompt string) (int, error) {
	s, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(s)
}

// promptImage optionally uploads a local file and appends its public URL.
func (a *App) promptImage(ctx context.Context, r *journal.Record) error {
	path, err := GetSimpleText(a.reader, "Image file (blank to skip)", a.out)
	if err != nil || path == "" {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	url, err := a.client.UploadImage(ctx, r.ID, filepath.Base(path), data, contentType)
	if err != nil {
		return err
	}

	r.ImageURLs = append(r.ImageURLs, url)
	a.println("Uploaded", url)
	return nil
}
