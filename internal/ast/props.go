package ast

// Имена свойств, которые выставляют правила парсера. Ключ добавляется только
// когда соответствующий необязательный синтаксис реально присутствовал:
// отсутствующий ключ и ключ с пустым значением — разные вещи, потребитель
// обязан трактовать «нет ключа» как «не указано».
const (
	PropName        = "name"
	PropSpecializes = "specializes"
	PropType        = "type"
	PropDefault     = "defaultValue"
	PropFrom        = "from"
	PropTo          = "to"
)

// PropKind различает строковые и числовые значения свойств.
type PropKind uint8

const (
	// PropStr marks a string-valued property.
	PropStr PropKind = iota
	// PropNum marks a numeric property (attribute defaults).
	PropNum
)

// PropValue — значение одного свойства узла.
type PropValue struct {
	Kind PropKind
	Str  string
	Num  float64
}

// StrValue constructs a string property value.
func StrValue(s string) PropValue { return PropValue{Kind: PropStr, Str: s} }

// NumValue constructs a numeric property value.
func NumValue(n float64) PropValue { return PropValue{Kind: PropNum, Num: n} }

// Props — открытый мешок свойств узла. Допустимые ключи на вид узла
// перечислены в catalog.go.
type Props map[string]PropValue

// Str returns the string value for key and whether the key is present.
func (p Props) Str(key string) (string, bool) {
	v, ok := p[key]
	if !ok || v.Kind != PropStr {
		return "", false
	}
	return v.Str, true
}

// Num returns the numeric value for key and whether the key is present.
func (p Props) Num(key string) (float64, bool) {
	v, ok := p[key]
	if !ok || v.Kind != PropNum {
		return 0, false
	}
	return v.Num, true
}

// Has reports whether key is present.
func (p Props) Has(key string) bool {
	_, ok := p[key]
	return ok
}
