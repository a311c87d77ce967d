package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/pribylovaa/go-local-blog/internal/models"
	"github.com/pribylovaa/go-local-blog/internal/pkg/log"
)

// defaultTopCount — размер рейтинга по умолчанию.
const defaultTopCount = 5

// Pager — постраничный курсор над упорядоченной последовательностью статей.
//
// Конвенция курсора ЕДИНАЯ и one-based: страница 1 — первый срез
// последовательности, видимый срез страницы p — [(p-1)*size, (p-1)*size+size).
// Оба режима исходной системы выражены именованными операциями над этим
// курсором: NextPage (догрузка следующей страницы) и Page (переход к номеру).
// Pager никогда не мутирует backing-последовательность.
type Pager struct {
	items  []models.Article
	size   int
	window int
	page   int // последняя загруженная страница; 0 — ещё ничего не загружено.
}

// Controls — состояние элементов навигации после перехода к странице.
type Controls struct {
	// Page — текущая страница (one-based).
	Page int
	// TotalPages — общее количество страниц.
	TotalPages int
	// HasPrev/HasNext — доступность кнопок «назад»/«вперёд».
	HasPrev bool
	HasNext bool
	// Window — видимые номера страниц: не более window подряд идущих
	// номеров с центром на текущей странице, прижатых к [1, TotalPages].
	Window []int
	// LeadingEllipsis/TrailingEllipsis — маркеры «...», когда окно
	// не достаёт до первой/последней страницы.
	LeadingEllipsis  bool
	TrailingEllipsis bool
}

// NewPager создаёт курсор над items с указанным размером страницы и окна.
// Значения меньше единицы заменяются на безопасные минимумы.
func NewPager(items []models.Article, size, window int) *Pager {
	if size < 1 {
		size = 1
	}
	if window < 1 {
		window = 1
	}

	return &Pager{
		items:  items,
		size:   size,
		window: window,
	}
}

// ArticlePager загружает статьи из хранилища и строит над ними Pager.
// Непустой categoryKey (кроме "all") ограничивает последовательность
// статьями этой категории; порядок внутри категории сохраняется.
func (s *Service) ArticlePager(ctx context.Context, categoryKey string) (*Pager, error) {
	const op = "service.pager.ArticlePager"

	articles, err := s.storage.LoadArticles(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if categoryKey != "" && categoryKey != "all" {
		filtered := make([]models.Article, 0, len(articles))
		for _, a := range articles {
			if a.CategoryKey == categoryKey {
				filtered = append(filtered, a)
			}
		}
		articles = filtered
	}

	log.From(ctx).Debug("article_pager_built",
		slog.String("op", op),
		slog.String("category", categoryKey),
		slog.Int("items", len(articles)),
	)

	return NewPager(articles, s.cfg.Pager.PageSize, s.cfg.Pager.WindowSize), nil
}

// TotalPages возвращает общее количество страниц.
func (p *Pager) TotalPages() int {
	return (len(p.items) + p.size - 1) / p.size
}

// CurrentPage возвращает последнюю загруженную страницу (0 — ни одной).
func (p *Pager) CurrentPage() int {
	return p.page
}

// NextPage — режим догрузки: возвращает срез следующей страницы и сдвигает
// курсор на неё. Второе значение — признак того, что остались ещё страницы.
// За пределами данных возвращается пустой срез и false: это штатное
// состояние «данные кончились», а не ошибка. Последовательные вызовы до
// исчерпания посещают каждый элемент ровно один раз.
func (p *Pager) NextPage() ([]models.Article, bool) {
	next := p.page + 1

	items := p.slice(next)
	if len(items) == 0 {
		return items, false
	}

	p.page = next

	return items, next < p.TotalPages()
}

// Page — режим перехода: возвращает срез страницы n (пустой за пределами
// данных), устанавливает курсор на n и пересчитывает состояние навигации.
// Повторный вызов с тем же n даёт идентичный срез: курсор не дрейфует.
func (p *Pager) Page(n int) ([]models.Article, Controls) {
	if n < 1 {
		n = 1
	}

	p.page = n

	return p.slice(n), p.controls(n)
}

// LoadMore — защищённый вариант догрузки: no-op с сигналом исчерпания,
// как только курсор достиг последней страницы.
func (p *Pager) LoadMore() ([]models.Article, bool) {
	if p.page >= p.TotalPages() {
		return nil, false
	}

	return p.NextPage()
}

// TopByViews возвращает n статей с наибольшим числом просмотров
// (n <= 0 — пять). Сортировка стабильная: при равных просмотрах сохраняется
// исходный относительный порядок. Функция чистая — порядок
// backing-последовательности, по которому идёт пагинация, не меняется.
func (p *Pager) TopByViews(n int) []models.Article {
	if n <= 0 {
		n = defaultTopCount
	}

	ranked := make([]models.Article, len(p.items))
	copy(ranked, p.items)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Views > ranked[j].Views
	})

	if n > len(ranked) {
		n = len(ranked)
	}

	return ranked[:n]
}

// slice возвращает видимый срез страницы n: [(n-1)*size, (n-1)*size+size).
func (p *Pager) slice(n int) []models.Article {
	start := (n - 1) * p.size
	if start >= len(p.items) {
		return []models.Article{}
	}

	end := start + p.size
	if end > len(p.items) {
		end = len(p.items)
	}

	return p.items[start:end]
}

// controls пересчитывает состояние навигации для страницы n.
func (p *Pager) controls(n int) Controls {
	total := p.TotalPages()

	c := Controls{
		Page:       n,
		TotalPages: total,
		HasPrev:    n > 1,
		HasNext:    n < total,
	}

	if total == 0 {
		return c
	}

	lo := n - p.window/2
	if lo < 1 {
		lo = 1
	}

	hi := lo + p.window - 1
	if hi > total {
		hi = total
		if lo = hi - p.window + 1; lo < 1 {
			lo = 1
		}
	}

	for i := lo; i <= hi; i++ {
		c.Window = append(c.Window, i)
	}

	c.LeadingEllipsis = lo > 1
	c.TrailingEllipsis = hi < total

	return c
}
