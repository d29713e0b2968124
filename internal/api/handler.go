package api

import (
	"errors"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
	"time"

	"github.com/mkendrick/keepsake/internal/db"
	"github.com/mkendrick/keepsake/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	database     *gorm.DB
	repos        *db.Repositories
	sender       services.Sender
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	templates    map[string]*template.Template
}

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

func NewHandler(database *gorm.DB, secret string, templateDir string, location *time.Location, sender services.Sender, cookieSecure bool) (*Handler, error) {
	if location == nil {
		location = time.Local
	}
	if sender == nil {
		return nil, errors.New("mail sender is required")
	}

	templates, err := loadTemplates(templateDir)
	if err != nil {
		return nil, err
	}

	return &Handler{
		database:     database,
		repos:        db.NewRepositories(database),
		sender:       sender,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		templates:    templates,
	}, nil
}

func loadTemplates(templateDir string) (map[string]*template.Template, error) {
	funcMap := template.FuncMap{
		"formatDate": func(value time.Time, layout string) string {
			if value.IsZero() {
				return ""
			}
			return value.Format(layout)
		},
		"categoryLabel": categoryLabel,
		"isActiveRoute": func(currentPath string, route string) bool {
			path := strings.TrimSpace(currentPath)
			if route == "/" {
				return path == "/" || strings.HasPrefix(path, "/?")
			}
			return path == route || strings.HasPrefix(path, route+"?") || strings.HasPrefix(path, route+"/")
		},
		"checked": func(on bool) template.HTMLAttr {
			if on {
				return "checked"
			}
			return ""
		},
	}

	pages := []string{
		"home",
		"signin",
		"register",
		"contacts",
		"contact_form",
		"reminder",
		"settings",
	}

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		parsed, err := template.New("base").Funcs(funcMap).ParseFiles(
			filepath.Join(templateDir, "base.html"),
			filepath.Join(templateDir, page+".html"),
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = parsed
	}
	return templates, nil
}

func categoryLabel(category string) string {
	switch category {
	case "co-worker":
		return "Co-Worker"
	case "":
		return ""
	default:
		return strings.ToUpper(category[:1]) + category[1:]
	}
}
