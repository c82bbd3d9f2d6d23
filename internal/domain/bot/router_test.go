package bot_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/bot"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

func testSettings() entity.BotSettings {
	return entity.BotSettings{
		WelcomeMessage: "Olá! Bem-vindo à AutoPeças Silva. Como posso ajudar?",
		PaymentMethods: []string{"PIX", "Cartão de crédito em até 12x", "Boleto"},
		BusinessHours:  "segunda a sexta, 8h às 18h; sábado, 8h às 12h",
		Enabled:        true,
	}
}

func testCatalog() []entity.Product {
	price := func(s string) decimal.Decimal {
		d, _ := decimal.NewFromString(s)
		return d
	}
	return []entity.Product{
		{ID: "p1", Code: "FLT-1020", Name: "Filtro de óleo Fram PH6017", Brand: "Fram", Category: "Filtros", Price: price("35.90"), Stock: 12, Active: true},
		{ID: "p2", Code: "FLT-2044", Name: "Filtro de ar esportivo", Brand: "K&N", Category: "Filtros", Price: price("189.00"), Stock: 4, Active: true},
		{ID: "p3", Code: "FLT-3001", Name: "Filtro de combustível", Category: "Filtros", Price: price("28.50"), Stock: 7, Active: true},
		{ID: "p4", Code: "FLT-4055", Name: "Filtro de cabine carvão ativado", Category: "Filtros", Price: price("49.90"), Stock: 9, Active: true},
		{ID: "p5", Code: "BAT-60AH", Name: "Bateria Moura 60Ah", Brand: "Moura", Category: "Baterias", Price: price("450.00"), Stock: 3, Active: true},
		{ID: "p6", Code: "PST-7781", Name: "Pastilha de freio dianteira", Brand: "Cobreq", Category: "Freios", Price: price("89.90"), Stock: 15, Active: true},
	}
}

func route(text string) bot.Reply {
	return bot.Route(text, testCatalog(), testSettings())
}

// ──────────────────────────────────────────────────────────────────────────────
// Saudação
// ──────────────────────────────────────────────────────────────────────────────

func TestRoute_SaudacaoDevolveWelcomeVerbatim(t *testing.T) {
	for _, msg := range []string{"oi", "Olá!", "bom dia", "Boa TARDE, tudo bem?", "boa noite"} {
		reply := route(msg)
		assert.Equal(t, testSettings().WelcomeMessage, reply.Message,
			"saudação %q deve devolver a mensagem de boas-vindas configurada, sem alteração", msg)
		assert.Equal(t, entity.MessageText, reply.Type)
		assert.Nil(t, reply.Metadata)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Busca por código
// ──────────────────────────────────────────────────────────────────────────────

func TestRoute_CodigoEncontrado(t *testing.T) {
	reply := route("tem o código FLT-1020?")

	assert.Equal(t, entity.MessageProduct, reply.Type)
	require.NotNil(t, reply.Metadata)
	require.NotNil(t, reply.Metadata.Product)
	assert.Equal(t, "FLT-1020", reply.Metadata.Product.Code)

	// O card embute código, preço formatado com vírgula e estoque.
	assert.Contains(t, reply.Message, "FLT-1020")
	assert.Contains(t, reply.Message, "35,90")
	assert.Contains(t, reply.Message, "12 unidades")
}

func TestRoute_CodigoSemAcentoEMinusculo(t *testing.T) {
	// "codigo" sem acento e código em minúsculas devem casar igualmente.
	reply := route("codigo flt-1020")

	assert.Equal(t, entity.MessageProduct, reply.Type)
	require.NotNil(t, reply.Metadata)
	require.NotNil(t, reply.Metadata.Product)
	assert.Equal(t, "FLT-1020", reply.Metadata.Product.Code)
}

func TestRoute_CodigoInexistente(t *testing.T) {
	reply := route("código XYZ-9999")

	assert.Equal(t, entity.MessageText, reply.Type)
	assert.Contains(t, reply.Message, "XYZ-9999")
	if reply.Metadata != nil {
		assert.Nil(t, reply.Metadata.Product, "código não encontrado não pode anexar produto")
	}
}

func TestRoute_PrefixoCodTambemCasa(t *testing.T) {
	reply := route("cod BAT-60AH por favor")

	assert.Equal(t, entity.MessageProduct, reply.Type)
	require.NotNil(t, reply.Metadata)
	require.NotNil(t, reply.Metadata.Product)
	assert.Equal(t, "BAT-60AH", reply.Metadata.Product.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Busca por categoria
// ──────────────────────────────────────────────────────────────────────────────

func TestRoute_CategoriaLimitaATres(t *testing.T) {
	// O catálogo tem 4 filtros; a resposta lista no máximo 3.
	reply := route("vocês têm filtro?")

	assert.Equal(t, entity.MessageProductList, reply.Type)
	require.NotNil(t, reply.Metadata)
	assert.Len(t, reply.Metadata.Products, 3)
	assert.Equal(t, "filtro", reply.Metadata.Keyword)

	// Todos os produtos devolvidos devem conter a palavra-chave.
	for _, p := range reply.Metadata.Products {
		assert.Contains(t, bot.Fold(p.Name+" "+p.Description+" "+p.Category), "filtro")
	}
}

func TestRoute_CategoriaComAcento(t *testing.T) {
	// "óleo" com acento casa com a keyword "oleo".
	reply := route("preciso de óleo")

	assert.Equal(t, entity.MessageProductList, reply.Type)
	require.NotNil(t, reply.Metadata)
	assert.Equal(t, "oleo", reply.Metadata.Keyword)
	require.NotEmpty(t, reply.Metadata.Products)
	assert.Equal(t, "FLT-1020", reply.Metadata.Products[0].Code)
}

func TestRoute_CategoriaSemEstoque(t *testing.T) {
	// "pneu" é keyword válida mas o catálogo não tem nenhum.
	reply := route("tem pneu aro 15?")

	assert.Equal(t, entity.MessageText, reply.Type)
	assert.Contains(t, reply.Message, "pneu")
	assert.Nil(t, reply.Metadata)
}

func TestRoute_EmpateDeCategoriaResolvePelaOrdemDaLista(t *testing.T) {
	// "filtro" vem antes de "bateria" na lista fixa, independente da
	// posição das palavras no texto.
	reply := route("bateria ou filtro, o que troco primeiro?")

	require.NotNil(t, reply.Metadata)
	assert.Equal(t, "filtro", reply.Metadata.Keyword)
}

// ──────────────────────────────────────────────────────────────────────────────
// Precedência das regras
// ──────────────────────────────────────────────────────────────────────────────

func TestRoute_SaudacaoPrecedeCategoria(t *testing.T) {
	reply := route("bom dia, tem filtro de óleo?")

	assert.Equal(t, testSettings().WelcomeMessage, reply.Message,
		"saudação tem precedência sobre categoria")
}

func TestRoute_CodigoPrecedeCategoria(t *testing.T) {
	reply := route("quero saber do código FLT-2044, é filtro bom?")

	// "código" casa antes de "filtro" e de "quero".
	assert.Equal(t, entity.MessageProduct, reply.Type)
	require.NotNil(t, reply.Metadata)
	assert.Equal(t, "FLT-2044", reply.Metadata.Product.Code)
}

func TestRoute_CompraSemCodigoNemCategoria(t *testing.T) {
	reply := route("quero fazer um pedido")

	assert.Equal(t, entity.MessageText, reply.Type)
	assert.Contains(t, bot.Fold(reply.Message), "codigo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Pagamento e horário
// ──────────────────────────────────────────────────────────────────────────────

func TestRoute_PagamentoListaMetodosConfigurados(t *testing.T) {
	reply := route("aceitam pix?")

	assert.Equal(t, entity.MessageText, reply.Type)
	for _, m := range testSettings().PaymentMethods {
		assert.Contains(t, reply.Message, m)
	}
}

func TestRoute_PagamentoSemMetodosConfigurados(t *testing.T) {
	settings := testSettings()
	settings.PaymentMethods = nil
	reply := bot.Route("como faço o pagamento?", testCatalog(), settings)

	assert.Equal(t, entity.MessageText, reply.Type)
	assert.Contains(t, reply.Message, "vendedores")
}

func TestRoute_HorarioUsaConfiguracao(t *testing.T) {
	reply := route("qual o horário de vocês?")

	assert.Equal(t, entity.MessageText, reply.Type)
	assert.Contains(t, reply.Message, testSettings().BusinessHours)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallback e pureza
// ──────────────────────────────────────────────────────────────────────────────

func TestRoute_FallbackMenuDeAjuda(t *testing.T) {
	for _, msg := range []string{"asdfgh", "meu carro está fazendo barulho", ""} {
		reply := route(msg)
		assert.Equal(t, entity.MessageText, reply.Type)
		assert.Contains(t, reply.Message, "Posso ajudar",
			"mensagem não reconhecida (%q) cai no menu de ajuda", msg)
	}
}

func TestRoute_Idempotente(t *testing.T) {
	// Mesma entrada, mesma saída: o roteador é uma função pura.
	for _, msg := range []string{"oi", "código FLT-1020", "tem filtro?", "pix", "xyz"} {
		first := route(msg)
		second := route(msg)
		assert.Equal(t, first, second, "Route(%q) deve ser determinística", msg)
	}
}

func TestRoute_NaoModificaOCatalogo(t *testing.T) {
	catalog := testCatalog()
	before := make([]entity.Product, len(catalog))
	copy(before, catalog)

	bot.Route("tem filtro? e código FLT-1020?", catalog, testSettings())

	assert.Equal(t, before, catalog, "Route não pode mutar o snapshot de produtos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Fold
// ──────────────────────────────────────────────────────────────────────────────

func TestFold_RemoveAcentosEBaixaCaixa(t *testing.T) {
	cases := map[string]string{
		"Código":    "codigo",
		"ÓLEO":      "oleo",
		"horário":   "horario",
		"atenção":   "atencao",
		"sem mudar": "sem mudar",
	}
	for in, want := range cases {
		assert.Equal(t, want, bot.Fold(in))
	}
}
