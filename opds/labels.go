package opds

// Conventional localized labels for common catalog sections. These are static
// data: constructed once, never mutated, and independent of parse/encode.
var (
	LabelAuthors = Localized(
		LangString{"de", "Autoren"},
		LangString{"en", "Authors"},
		LangString{"es", "Autoras"},
		LangString{"fr", "Auteurs"},
		LangString{"pt", "Autores"},
	)

	LabelBooksAlphabetical = Localized(
		LangString{"de", "Bücher (Alphabetisch)"},
		LangString{"en", "Books (Alphabetical)"},
		LangString{"es", "Libros (Orden Alfabético)"},
		LangString{"fr", "Livres (Par ordre alphabétique)"},
		LangString{"pt", "Livros (Por ordem alfabética)"},
	)

	LabelBooksRecentlyAdded = Localized(
		LangString{"de", "Bücher (Kürzlich hinzugefügt)"},
		LangString{"en", "Books (Recently Added)"},
		LangString{"es", "Libros (Añadidos recientemente)"},
		LangString{"fr", "Livres (Ajouts récents)"},
		LangString{"pt", "Livros (Adicionados Recentemente)"},
	)

	LabelCategories = Localized(
		LangString{"de", "Kategorien"},
		LangString{"en", "Categories"},
		LangString{"es", "Categorías"},
		LangString{"fr", "Catégories"},
		LangString{"pt", "Categorias"},
	)

	LabelFileFormats = Localized(
		LangString{"de", "Dateiformate"},
		LangString{"en", "File Formats"},
		LangString{"es", "Formatos de archivos"},
		LangString{"fr", "Formats de fichiers"},
		LangString{"pt", "Formatos de Ficheiros"},
	)

	LabelLanguages = Localized(
		LangString{"de", "Sprachen"},
		LangString{"en", "Languages"},
		LangString{"es", "Idiomas"},
		LangString{"fr", "Langues"},
		LangString{"pt", "Línguas"},
	)

	LabelPublishers = Localized(
		LangString{"de", "Verlag"},
		LangString{"en", "Publishers"},
		LangString{"es", "Editores"},
		LangString{"fr", "Éditeurs"},
		LangString{"pt", "Editores"},
	)
)
