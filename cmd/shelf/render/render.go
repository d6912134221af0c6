package render

type Renderer interface {
	RenderBookList(view BookListView) string
	RenderBook(item BookItem) string
}

type BookListView struct {
	Items []BookItem
}

type BookItem struct {
	Title     string
	Author    string
	ISBN      string
	Status    string
	Available bool
}

func (v BookListView) IsEmpty() bool {
	return len(v.Items) == 0
}
