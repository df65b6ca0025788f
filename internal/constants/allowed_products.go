package constants

// Lista de produtos permitidos (tipos de peças de moldes).
// A comparação é por substring na descrição em caixa alta.
var AllowedProducts = []string{
	"MOLDE",
	"BLANK",
	"BAFFLE",
	"FUNIL",
	"FUNDO",
	"NECKRING",
	"ANEL DE GUIA",
	"INJETOR",
	"MACHO",
	"PLUG DO BAFFLE",
	"BUCHA DO FUNDO",
	"PLUG DO FUNDO",
	"BUCHA DO MOLDE",
	"EIXO MOTOR",
	"GUIA DA GAVETA",
	"PINO",
	"ALAVANCA AC",
}
