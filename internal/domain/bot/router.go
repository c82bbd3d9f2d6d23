// Package bot implementa o roteador de intenções do autoatendimento.
//
// O roteador é uma função pura: recebe o texto do cliente, o snapshot de
// produtos ativos e a configuração do bot, e devolve a resposta. As regras
// são avaliadas em ordem de prioridade e a primeira que casar responde.
// O casamento é lexical (substring, sem acentos, sem stemming) - uma
// classificação aproximada, não um sistema de NLU.
package bot

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/entity"
)

// Reply é o payload de resposta do bot.
type Reply struct {
	Message  string    `json:"message"`
	Type     string    `json:"type"` // text, product, product_list
	Metadata *Metadata `json:"metadata,omitempty"`
}

// Metadata payload estruturado anexado à resposta.
type Metadata struct {
	Product  *entity.Product  `json:"product,omitempty"`
	Products []entity.Product `json:"products,omitempty"`
	Keyword  string           `json:"keyword,omitempty"`
}

// maxCategoryMatches limita a lista de produtos por categoria na resposta.
const maxCategoryMatches = 3

// Vocabulário fixo do roteador. A ordem das categorias importa: em caso de
// empate responde a primeira da lista que aparecer no texto.
var (
	greetingWords = []string{"bom dia", "boa tarde", "boa noite", "ola", "oi"}

	categoryKeywords = []string{
		"filtro", "oleo", "pneu", "bateria", "vela",
		"freio", "embreagem", "amortecedor", "pastilha", "disco",
	}

	purchaseWords = []string{"quero", "comprar", "compra", "pedido", "pedir"}

	paymentWords = []string{"pagamento", "pagar", "pix", "cartao", "boleto", "parcela"}

	hoursWords = []string{"horario", "funcionamento", "aberto", "que horas", "atendimento"}
)

// codeTokenRe captura o token alfanumérico após "codigo"/"cod"/"ref"
// no texto já normalizado (minúsculas, sem acentos).
var codeTokenRe = regexp.MustCompile(`(?:codigo|cod|ref)\W*([a-z0-9][a-z0-9-]*)`)

// input agrupa os argumentos já normalizados compartilhados pelas regras.
type input struct {
	raw      string
	folded   string
	products []entity.Product
	settings entity.BotSettings
}

// rule é um par (predicado, resposta). A avaliação em ordem torna a
// precedência explícita e cada regra testável isoladamente.
type rule struct {
	name    string
	matches func(in *input) bool
	respond func(in *input) Reply
}

var rules = []rule{
	{name: "greeting", matches: matchesAny(greetingWords), respond: respondGreeting},
	{name: "product_code", matches: matchesCode, respond: respondCode},
	{name: "category", matches: matchesCategory, respond: respondCategory},
	{name: "purchase", matches: matchesAny(purchaseWords), respond: respondPurchase},
	{name: "payment", matches: matchesAny(paymentWords), respond: respondPayment},
	{name: "hours", matches: matchesAny(hoursWords), respond: respondHours},
}

// Route decide a resposta do bot para uma mensagem de cliente.
// Nunca retorna erro: para qualquer string bem formada há resposta
// (no pior caso, o menu de ajuda). Idempotente: mesma entrada, mesma saída.
func Route(text string, products []entity.Product, settings entity.BotSettings) Reply {
	in := &input{
		raw:      text,
		folded:   Fold(text),
		products: products,
		settings: settings,
	}
	for _, r := range rules {
		if r.matches(in) {
			return r.respond(in)
		}
	}
	return respondFallback(in)
}

// ── Predicados ────────────────────────────────────────────────────────────────

func matchesAny(words []string) func(in *input) bool {
	return func(in *input) bool {
		return containsAny(in.folded, words)
	}
}

func matchesCode(in *input) bool {
	return codeTokenRe.MatchString(in.folded)
}

func matchesCategory(in *input) bool {
	return firstCategory(in.folded) != ""
}

func containsAny(folded string, words []string) bool {
	for _, w := range words {
		if strings.Contains(folded, w) {
			return true
		}
	}
	return false
}

// firstCategory devolve a primeira palavra-chave da lista fixa presente no
// texto (resolve empates pela ordem da lista, não pela posição no texto).
func firstCategory(folded string) string {
	for _, kw := range categoryKeywords {
		if strings.Contains(folded, kw) {
			return kw
		}
	}
	return ""
}

// ── Respostas ─────────────────────────────────────────────────────────────────

func respondGreeting(in *input) Reply {
	return Reply{Message: in.settings.WelcomeMessage, Type: entity.MessageText}
}

func respondCode(in *input) Reply {
	token := codeTokenRe.FindStringSubmatch(in.folded)[1]
	for i := range in.products {
		p := in.products[i]
		if strings.Contains(Fold(p.Code), token) {
			return Reply{
				Message:  productCard(&p),
				Type:     entity.MessageProduct,
				Metadata: &Metadata{Product: &p},
			}
		}
	}
	return Reply{
		Message: fmt.Sprintf(
			"Não encontrei nenhuma peça com o código \"%s\" 😕\n"+
				"Confira se o código está correto ou me diga o nome da peça que você procura.",
			strings.ToUpper(token)),
		Type: entity.MessageText,
	}
}

func respondCategory(in *input) Reply {
	kw := firstCategory(in.folded)
	var found []entity.Product
	for i := range in.products {
		p := in.products[i]
		if productMatchesKeyword(&p, kw) {
			found = append(found, p)
			if len(found) == maxCategoryMatches {
				break
			}
		}
	}
	if len(found) == 0 {
		return Reply{
			Message: fmt.Sprintf(
				"No momento estou sem %s em estoque 😕 Posso avisar um vendedor para verificar a disponibilidade?", kw),
			Type: entity.MessageText,
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Encontrei estas opções de %s para você:\n\n", kw)
	for _, p := range found {
		fmt.Fprintf(&b, "🔹 [%s] %s - R$ %s (%d em estoque)\n", p.Code, p.Name, formatPrice(p.Price), p.Stock)
	}
	b.WriteString("\nPara ver detalhes, envie: código + o código da peça.")

	return Reply{
		Message:  b.String(),
		Type:     entity.MessageProductList,
		Metadata: &Metadata{Products: found, Keyword: kw},
	}
}

func respondPurchase(in *input) Reply {
	return Reply{
		Message: "Ótimo! 🛒 Para fazer seu pedido, me envie o código da peça e a quantidade.\n" +
			"Exemplo: código FLT-1020, 2 unidades.\n" +
			"Se ainda não sabe o código, me diga o nome da peça que eu procuro para você.",
		Type: entity.MessageText,
	}
}

func respondPayment(in *input) Reply {
	methods := in.settings.PaymentMethods
	if len(methods) == 0 {
		return Reply{
			Message: "Consulte nossas formas de pagamento com um de nossos vendedores.",
			Type:    entity.MessageText,
		}
	}
	var b strings.Builder
	b.WriteString("Aceitamos as seguintes formas de pagamento:\n\n")
	for _, m := range methods {
		fmt.Fprintf(&b, "💳 %s\n", m)
	}
	return Reply{Message: b.String(), Type: entity.MessageText}
}

func respondHours(in *input) Reply {
	return Reply{
		Message: "Nosso horário de atendimento: " + in.settings.BusinessHours,
		Type:    entity.MessageText,
	}
}

func respondFallback(_ *input) Reply {
	return Reply{
		Message: "Posso ajudar você com:\n\n" +
			"🔎 Buscar uma peça - envie o nome (ex.: filtro de óleo)\n" +
			"📋 Consultar por código - envie: código + o código da peça\n" +
			"🛒 Fazer um pedido - envie: quero + código + quantidade\n" +
			"💳 Formas de pagamento - envie: pagamento\n" +
			"🕐 Horário de atendimento - envie: horário\n\n" +
			"Ou aguarde que um de nossos vendedores já vai te atender!",
		Type: entity.MessageText,
	}
}

// ── Formatação ────────────────────────────────────────────────────────────────

func productCard(p *entity.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔧 %s", p.Name)
	if p.Brand != "" {
		fmt.Fprintf(&b, " (%s)", p.Brand)
	}
	fmt.Fprintf(&b, "\n📋 Código: %s\n💰 Preço: R$ %s\n📦 Estoque: %d unidades\n\n",
		p.Code, formatPrice(p.Price), p.Stock)
	fmt.Fprintf(&b, "Para comprar, envie: quero %s + quantidade", p.Code)
	return b.String()
}

func productMatchesKeyword(p *entity.Product, kw string) bool {
	return strings.Contains(Fold(p.Name), kw) ||
		strings.Contains(Fold(p.Description), kw) ||
		strings.Contains(Fold(p.Category), kw)
}

// formatPrice formata o decimal no padrão brasileiro (vírgula decimal).
func formatPrice(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}
