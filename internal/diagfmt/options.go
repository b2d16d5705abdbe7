package diagfmt

// PrettyOpts настраивают человекочитаемый вывод диагностик.
type PrettyOpts struct {
	Color   bool
	Context int // сколько строк исходника показывать вокруг ошибки
}
