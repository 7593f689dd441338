package port

import (
	"context"
)

// ObjectStoragePort - контракт для загрузки файлов в объектное хранилище.
// Возвращает публичный URL загруженного объекта.
// Путь формируется адаптером как <категория>/<random>-<timestamp>.<ext>.
type ObjectStoragePort interface {
	Upload(ctx context.Context, category, fileName string, content []byte) (string, error)
}
