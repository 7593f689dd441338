package domain

import (
	"encoding/json"
	"fmt"
	"net/url"
	"path"
	"strings"
)

// Photo - каноническое представление фотографии.
// Backend отдает фото в двух форматах: либо голая строка-URL,
// либо объект {url|path, name}. Нормализуем оба варианта в одном месте,
// чтобы не разбрасывать ветвления по обработчикам.
type Photo struct {
	URL  string `json:"url"`
	Name string `json:"name,omitempty"`
}

// UnmarshalJSON принимает обе формы: "https://..." и {"url": "...", "name": "..."}.
func (p *Photo) UnmarshalJSON(data []byte) error {
	// Сначала пробуем простую строку
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*p = Photo{URL: raw, Name: displayNameFromURL(raw)}
		return nil
	}

	// Иначе это объект. Поле адреса может называться url или path.
	var obj struct {
		URL  string `json:"url"`
		Path string `json:"path"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("photo: unsupported representation: %w", err)
	}

	u := obj.URL
	if u == "" {
		u = obj.Path
	}
	name := obj.Name
	if name == "" {
		name = displayNameFromURL(u)
	}
	*p = Photo{URL: u, Name: name}
	return nil
}

// NormalizePhotos приводит произвольный список (строки, объекты, уже готовые Photo)
// к каноническому виду. Используется при загрузке записи в форму редактирования.
func NormalizePhotos(raw []json.RawMessage) ([]Photo, error) {
	photos := make([]Photo, 0, len(raw))
	for i, r := range raw {
		var p Photo
		if err := json.Unmarshal(r, &p); err != nil {
			return nil, fmt.Errorf("photo %d: %w", i, err)
		}
		if p.URL == "" {
			continue // пустые записи пропускаем
		}
		photos = append(photos, p)
	}
	return photos, nil
}

// displayNameFromURL выводит человекочитаемое имя файла из URL.
func displayNameFromURL(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		return path.Base(u.Path)
	}
	// URL не распарсился - берем хвост строки
	if idx := strings.LastIndex(rawURL, "/"); idx >= 0 && idx < len(rawURL)-1 {
		return rawURL[idx+1:]
	}
	return rawURL
}

// PendingPhoto - локально прикрепленный файл, который еще не загружен
// в объектное хранилище. Content держим в памяти до момента отправки формы.
type PendingPhoto struct {
	FileName string
	Content  []byte
}
