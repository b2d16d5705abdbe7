package ast

// validKeys перечисляет свойства, которые может выставить правило парсера для
// каждого вида узла. Каталог документирующий: парсер его не читает, проверка
// живёт в тестах и форматтерах.
var validKeys = map[NodeKind][]string{
	NodeRoot:        {},
	NodePackage:     {PropName},
	NodePart:        {PropName, PropSpecializes},
	NodeAttribute:   {PropName, PropType, PropDefault},
	NodePort:        {PropName, PropType},
	NodeConnection:  {PropName, PropFrom, PropTo},
	NodeRequirement: {PropName},
	NodeUseCase:     {PropName},
	NodeGeneric:     {PropName},
}

// ValidKey reports whether key may appear on a node of the given kind.
func ValidKey(kind NodeKind, key string) bool {
	for _, k := range validKeys[kind] {
		if k == key {
			return true
		}
	}
	return false
}

// ValidKeys returns the documented property keys for the given node kind.
func ValidKeys(kind NodeKind) []string {
	return validKeys[kind]
}
