package flow

import (
	"fmt"
	"strings"

	"shopbot/internal/domain/catalog"
	"shopbot/internal/domain/customer"
	"shopbot/internal/domain/money"
)

// Customer-facing copy. The bots serve Brazilian stores.
const (
	msgGenericFailure     = "Não foi possível concluir sua solicitação agora. Tente novamente em instantes."
	msgUnrecognizedOption = "Opção não reconhecida. Escolha uma das opções do menu."
	msgMainMenu           = "Olá! Como podemos ajudar?"
	msgChooseCategory     = "Escolha uma categoria:"
	msgNoCategories       = "Nenhum produto disponível no momento."
	msgCategoryGone       = "Essa categoria não está mais disponível."
	msgOutOfStock         = "Produto esgotado. Tente outra categoria."
	msgBlocked            = "Sua conta está bloqueada para compras. Fale com o suporte."
	msgCustomerMissing    = "Não encontramos seu cadastro. Envie uma mensagem para começar de novo."
	msgPurchaseFailed     = "Não foi possível registrar sua compra. Seu saldo foi devolvido."
	msgChooseProvider     = "Escolha a forma de pagamento:"
	msgNoProviders        = "Nenhuma forma de pagamento disponível no momento."
	msgChooseAmount       = "Escolha o valor da recarga:"
	msgAmountRejected     = "Esse valor não está mais disponível. Escolha um dos valores atuais."
	msgChargeFailed       = "Não foi possível gerar a cobrança. Tente novamente em instantes."
	msgChargeCreated      = "Pague usando as instruções abaixo. O saldo é creditado assim que o pagamento for confirmado."
	msgSupportOpened      = "Você está falando com o atendimento. Escreva sua mensagem; quando terminar toque em Encerrar."
	msgSupportClosed      = "Atendimento encerrado. Obrigado pelo contato!"

	msgAdminMenu          = "Painel do administrador:"
	msgAdminNoCategories  = "Nenhuma categoria cadastrada."
	msgAdminCategoryGone  = "Categoria não encontrada."
	msgAskCategoryName    = "Envie o novo nome da categoria."
	msgAskCategoryPrice   = "Envie o novo preço (ex: 49,90)."
	msgAskCategorySku     = "Envie o novo SKU (letras, números, - e _)."
	msgInvalidName        = "Nome inválido: use pelo menos 2 caracteres."
	msgInvalidPrice       = "Preço inválido. Use números, ex: 49,90."
	msgInvalidSku         = "SKU inválido: use letras, números, - ou _."
	msgAskCustomerLookup  = "Envie o telefone ou o ID do cliente."
	msgCustomerNotFound   = "Cliente não encontrado. Envie outro telefone ou ID."
	msgAdminCustomerGone  = "Cliente não encontrado."
	msgAskCustomerName    = "Envie o novo nome do cliente."
	msgAskBalanceDelta    = "Envie o ajuste de saldo (ex: +10,00 ou -5,00)."
	msgInvalidDelta       = "Valor inválido. Use +10,00 para creditar ou -5,00 para debitar."
	msgInvalidChoice      = "Responda 1 (nome), 2 (saldo) ou 3 (bloquear/desbloquear)."
	msgCustomerBlockedNow = "O cliente está bloqueado; desbloqueie antes de ajustar o saldo."
)

const (
	labelBuy        = "Comprar"
	labelAddBalance = "Adicionar saldo"
	labelSupport    = "Suporte"
	labelFinish     = "Encerrar"
	labelMenu       = "Menu"
	labelCategories = "Ver categorias"
	labelMore       = "Mais categorias"
	labelCatalog    = "Categorias"
	labelCustomers  = "Clientes"
	labelCancel     = "Cancelar"
	labelAmounts    = "Valores"
	labelProviders  = "Pagamento"
	labelOptions    = "Opções"
	labelRename     = "Renomear"
	labelPrice      = "Alterar preço"
	labelSku        = "Alterar SKU"
	labelActivate   = "Ativar"
	labelDeactivate = "Desativar"
	labelName       = "Nome"
	labelBalance    = "Saldo"
	labelBlock      = "Bloquear"
	labelUnblock    = "Desbloquear"
)

func categoryCard(c *catalog.Category) string {
	var b strings.Builder
	b.WriteString(c.Name)
	if c.Description != "" {
		b.WriteString("\n" + c.Description)
	}
	fmt.Fprintf(&b, "\nPreço: R$ %s", c.Price)
	fmt.Fprintf(&b, "\nDisponível: %d", c.Available)
	return b.String()
}

func adminCategoryCard(c *catalog.Category) string {
	status := "ativa"
	if !c.Active {
		status = "inativa"
	}
	sku := c.SKU
	if sku == "" {
		sku = "-"
	}
	return fmt.Sprintf("#%d %s\nPreço: R$ %s\nSKU: %s\nEstoque: %d\nStatus: %s",
		c.ID, c.Name, c.Price, sku, c.Available, status)
}

func customerCard(c *customer.Customer) string {
	status := "ativo"
	if c.Blocked {
		status = "bloqueado"
	}
	return fmt.Sprintf("Cliente #%d\nNome: %s\nTelefone: %s\nSaldo: R$ %s\nStatus: %s",
		c.ID, c.DisplayName(), c.Phone, c.Balance, status)
}

func purchaseConfirmation(categoryName string, price, balance money.Cents) string {
	return fmt.Sprintf("Compra confirmada: %s por R$ %s.\nSaldo atual: R$ %s", categoryName, price, balance)
}

func insufficientBalance(price, balance, shortfall money.Cents) string {
	return fmt.Sprintf("Saldo insuficiente. Preço: R$ %s, seu saldo: R$ %s. Faltam R$ %s.", price, balance, shortfall)
}

func amountTitle(c money.Cents) string { return "R$ " + c.String() }
