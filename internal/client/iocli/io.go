package iocli

// IO терминальный ввод-вывод клиента
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	// ReadInput печатает prompt и возвращает введенную строку без пробелов по краям
	ReadInput(prompt string) (string, error)
	// IsInteractive сообщает, подключен ли ввод к терминалу
	IsInteractive() bool
}
