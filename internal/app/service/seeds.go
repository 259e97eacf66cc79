package service

const (
	letters       = "abcdefghijklmnopqrstuvwxyz"
	digits        = "0123456789"
	queryAlphabet = letters + digits
)

// Palabras comunes en nombres de torneos; cubren nombres que los pares de letras no alcanzan.
var commonWords = []string{
	"torneo", "tornei", "tourno", "turnie", "free", "open", "join",
	"clan", "war", "pro", "noob", "legend", "champ", "master", "elite",
	"draft", "mega", "super", "test", "fun", "1000", "500", "100",
}

// SeedQueries: 26x26 pares de letras, los dígitos sueltos y commonWords.
// Una sola letra llena la página casi siempre, por eso se arranca con pares.
func SeedQueries() []string {
	out := make([]string, 0, len(letters)*len(letters)+len(digits)+len(commonWords))
	for _, a := range letters {
		for _, b := range letters {
			out = append(out, string(a)+string(b))
		}
	}
	for _, d := range digits {
		out = append(out, string(d))
	}
	return append(out, commonWords...)
}

// ChildQueries agrega un carácter de [a-z0-9] a q.
func ChildQueries(q string) []string {
	out := make([]string, 0, len(queryAlphabet))
	for _, c := range queryAlphabet {
		out = append(out, q+string(c))
	}
	return out
}
