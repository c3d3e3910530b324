package recordstore

import (
	"net/url"
	"strings"
)

// Query описывает набор фильтров и сортировок для одной таблицы в формате
// query-параметров хранилища: col=eq.v, col=in.(a,b), col=lt.v, order=...
// Построитель иммутабельный: каждый вызов возвращает копию.
type Query struct {
	filters []filter
	order   []string
}

type filter struct {
	column string
	op     string
	value  string
}

// NewQuery создает пустой Query (без фильтров — вся таблица)
func NewQuery() Query {
	return Query{}
}

// Eq добавляет фильтр точного совпадения: col=eq.value
func (q Query) Eq(column, value string) Query {
	q.filters = append(q.filters[:len(q.filters):len(q.filters)], filter{column, "eq", value})
	return q
}

// In добавляет фильтр is-one-of: col=in.(a,b,c)
func (q Query) In(column string, values []string) Query {
	q.filters = append(q.filters[:len(q.filters):len(q.filters)], filter{column, "in", "(" + strings.Join(values, ",") + ")"})
	return q
}

// Lt добавляет фильтр строгого "меньше": col=lt.value
func (q Query) Lt(column, value string) Query {
	q.filters = append(q.filters[:len(q.filters):len(q.filters)], filter{column, "lt", value})
	return q
}

// OrderBy добавляет выражение сортировки, например "date.desc"
func (q Query) OrderBy(expr string) Query {
	q.order = append(q.order[:len(q.order):len(q.order)], expr)
	return q
}

// Encode сериализует Query в строку query-параметров.
// selectAll добавляет select=* (нужен только для чтения).
func (q Query) Encode(selectAll bool) string {
	parts := make([]string, 0, len(q.filters)+2)

	for _, f := range q.filters {
		parts = append(parts, url.QueryEscape(f.column)+"="+f.op+"."+url.QueryEscape(f.value))
	}
	if len(q.order) > 0 {
		parts = append(parts, "order="+url.QueryEscape(strings.Join(q.order, ",")))
	}
	if selectAll {
		parts = append(parts, "select=*")
	}

	return strings.Join(parts, "&")
}
