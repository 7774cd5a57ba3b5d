package models

// Product представляет товар в каталоге пользователя.
// Каждый товар принадлежит ровно одному пользовательскому хранилищу,
// ссылок между хранилищами не существует.
type Product struct {
	ID          string  `json:"id"`          // ID уникальный идентификатор записи (UUID)
	Name        string  `json:"name"`        // Name название товара (1..120 символов)
	Description string  `json:"description"` // Description опциональное описание (до 500 символов)
	Price       float64 `json:"price"`       // Price цена за единицу, неотрицательная
	Quantity    int64   `json:"quantity"`    // Quantity остаток на складе, не бывает отрицательным
	Archived    bool    `json:"archived"`    // Archived флаг архивации (скрыт из активного каталога)
	CreatedAt   int64   `json:"created_at"`  // CreatedAt время создания, unix ms
	UpdatedAt   int64   `json:"updated_at"`  // UpdatedAt время последнего изменения, unix ms
}
