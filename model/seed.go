package model

import "github.com/shopspring/decimal"

// Reference catalog present after the first initialization.

var SeedCategories = []Category{
	{ID: 1, Name: "Pizzas Salgadas"},
	{ID: 2, Name: "Pizzas Doces"},
	{ID: 3, Name: "Entradas e Petiscos"},
	{ID: 4, Name: "Refrigerantes"},
	{ID: 5, Name: "Sucos Naturais"},
	{ID: 6, Name: "Água"},
	{ID: 7, Name: "Cervejas"},
	{ID: 8, Name: "Vinhos"},
	{ID: 9, Name: "Sobremesas"},
}

var SeedTables = []Table{
	{ID: 1, Name: "Mesa 01"},
	{ID: 2, Name: "Mesa 02"},
	{ID: 3, Name: "Mesa 03"},
	{ID: 4, Name: "Mesa 04"},
	{ID: 5, Name: "Mesa 05"},
	{ID: 6, Name: "Mesa 06"},
	{ID: 7, Name: "Mesa 07"},
}

var SeedProducts = []Product{
	seedProduct(1, 1, "Calabresa", "Molho de tomate, mussarela, rodelas de calabresa de primeira qualidade e cebola fatiada", "30.00", "./imgs/pizza_calabresa.jpg"),
	seedProduct(2, 1, "Marguerita", "Molho de tomate, mussarela, rodelas de tomate fresco, manjericão fresco e um toque de parmesão", "32.00", "./imgs/pizza-marguerita.jpg"),
	seedProduct(3, 1, "Portuguesa", "Molho de tomate, mussarela, presunto, ovos cozidos, cebola, azeitonas pretas e orégano", "35.00", "./imgs/pizza-portuguesa.jpg"),

	seedProduct(4, 2, "Chocolate Preto", "Delicioso chocolate ao leite derretido (opcional: granulado)", "30.00", "./imgs/pizza-chocolate.jpg"),
	seedProduct(5, 2, "Chocolate Branco com Morango", "Chocolate branco derretido com morangos frescos fatiados", "35.00", "./imgs/pizza-choco-morango.jpg"),

	seedProduct(6, 3, "Pão de Alho Tradicional", "Pão baguete com pasta de alho caseira, gratinado com queijo (Unidade)", "8.00", "./imgs/pao-alho.jpg"),
	seedProduct(7, 3, "Calabresa Acebolada", "Porção de calabresa fatiada e salteada com cebola. Acompanha pão.", "38.00", "./imgs/calabresa-acebolada.jpg"),

	seedProduct(8, 4, "Coca-Cola", "Lata 350ml", "6.00", "./imgs/coca-cola-lata.jpg"),
	seedProduct(9, 4, "Guaraná Antarctica", "Lata 350ml", "6.00", "./imgs/guarana-lata.jpg"),

	seedProduct(10, 5, "Suco de Laranja", "Natural - Copo 400ml", "9.00", "./imgs/suco-laranja.jpg"),
	seedProduct(11, 5, "Suco de Abacaxi", "Polpa/Natural - Copo 400ml", "9.00", "./imgs/suco-abacaxi.jpg"),

	seedProduct(12, 6, "Água Mineral Sem Gás", "Garrafa 500ml", "4.00", "./imgs/agua-sem-gas.jpg"),
	seedProduct(13, 6, "Água Mineral Com Gás", "Garrafa 500ml", "4.50", "./imgs/agua-com-gas.jpg"),

	seedProduct(14, 7, "Skol", "Lata 350ml", "7.00", "./imgs/cerveja-skol.jpg"),
	seedProduct(15, 7, "Brahma", "Lata 350ml", "7.00", "./imgs/cerveja-brahma.jpg"),

	seedProduct(16, 8, "Vinho Tinto da Casa", "Taça - Cabernet Sauvignon ou Merlot", "20.00", "./imgs/vinho-tinto-taca.jpg"),
	seedProduct(17, 8, "Vinho Branco da Casa", "Taça - Sauvignon Blanc", "20.00", "./imgs/vinho-branco-taca.jpg"),

	seedProduct(18, 9, "Mousse de Maracujá", "Mousse de maracujá com açúcar", "12.00", "./imgs/mousse-maracuja.jpg"),
	seedProduct(19, 9, "Açaí na Tigela", "300ml - Açaí com granola e banana", "22.00", "./imgs/acai-tigela.jpg"),
}

func seedProduct(id, categoryID uint, name, description, price, photo string) Product {
	return Product{
		ID:          id,
		Name:        name,
		Description: &description,
		Price:       decimal.RequireFromString(price),
		Photo:       &photo,
		CategoryID:  categoryID,
	}
}
