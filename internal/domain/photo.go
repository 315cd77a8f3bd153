package domain

// ProgressPhoto is one uploaded photo. The image bytes either live
// inline in the row or, when an object store is configured, under
// ObjectKey with Image left empty. Listings never carry the payload;
// it is fetched per photo on demand.
type ProgressPhoto struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	Date      string `json:"date"` // YYYY-MM-DD
	Image     []byte `json:"-"`
	ObjectKey string `json:"-"`
	Notes     string `json:"notes"`
}
