package topics

// sampleTopics returns the starter catalogue used by the seed endpoint.
// Each entry carries the full multi-language shape; the legacy columns are
// derived by Normalize on insert.
func sampleTopics() []CreateInput {
	return []CreateInput{
		{
			Slug:            "manejo-de-estados",
			Frameworks:      []string{"react", "vue", "angular", "svelte"},
			DifficultyLevel: DifficultyIntermediate,
			EstimatedTime:   "15 min",
			Translations: map[string]Translation{
				"es": {
					Title:       "Manejo de Estados",
					Description: "El estado representa los datos que cambian durante la vida de un componente. Cada framework propone su propio modelo para declararlo, leerlo y actualizarlo de forma reactiva.",
					Analogy:     "Es como la pizarra de una cocina: cualquier cocinero puede leer los pedidos pendientes y, cuando alguien escribe uno nuevo, todos reaccionan al instante.",
				},
				"en": {
					Title:       "State Management",
					Description: "State is the data that changes during a component's lifetime. Each framework offers its own model for declaring, reading and updating it reactively.",
					Analogy:     "It works like a kitchen whiteboard: every cook can read the pending orders, and when someone writes a new one, everyone reacts immediately.",
				},
				"fr": {
					Title:       "Gestion de l'État",
					Description: "L'état représente les données qui changent pendant la vie d'un composant. Chaque framework propose son propre modèle pour le déclarer, le lire et le mettre à jour de manière réactive.",
					Analogy:     "C'est comme le tableau d'une cuisine : chaque cuisinier peut lire les commandes en attente et, dès que quelqu'un en écrit une nouvelle, tout le monde réagit aussitôt.",
				},
			},
			FrameworkDetails: map[string]FrameworkDetail{
				"react": {
					CodeExample: "const [count, setCount] = useState(0);\n\nreturn <button onClick={() => setCount(count + 1)}>{count}</button>;",
					Translations: map[string]FrameworkTranslation{
						"es": {
							Similarities: "Como en los demás frameworks, el estado local vive dentro del componente y su cambio dispara un re-render.",
							Differences:  "React exige inmutabilidad: nunca se muta el valor, siempre se llama al setter devuelto por useState.",
						},
						"en": {
							Similarities: "As in the other frameworks, local state lives inside the component and changing it triggers a re-render.",
							Differences:  "React demands immutability: you never mutate the value, you always call the setter returned by useState.",
						},
					},
				},
				"vue": {
					CodeExample: "const count = ref(0);\n\n<button @click=\"count++\">{{ count }}</button>",
					Translations: map[string]FrameworkTranslation{
						"es": {
							Similarities: "También declara el estado dentro del componente y la vista se actualiza sola al cambiarlo.",
							Differences:  "Vue usa proxies reactivos: se muta count.value directamente y el framework detecta el cambio.",
						},
					},
				},
				"svelte": {
					CodeExample: "let count = $state(0);\n\n<button onclick={() => count++}>{count}</button>",
					Translations: map[string]FrameworkTranslation{
						"es": {
							Similarities: "El estado es local al componente, igual que en React y Vue.",
							Differences:  "Svelte compila la reactividad: una asignación normal basta, sin setters ni wrappers.",
						},
					},
				},
			},
			TableElements: map[string]TableElement{
				"react": {
					Similitudes: "Estado local declarado dentro del componente; su cambio re-renderiza la vista.",
					Diferencias: "Inmutabilidad obligatoria: siempre a través del setter de useState.",
				},
				"vue": {
					Similitudes: "Estado local reactivo dentro del componente.",
					Diferencias: "Mutación directa de count.value gracias a los proxies reactivos.",
				},
				"svelte": {
					Similitudes: "Estado local al componente.",
					Diferencias: "Reactividad compilada: una asignación normal dispara la actualización.",
				},
			},
		},
		{
			Slug:            "componentes-reutilizables",
			Frameworks:      []string{"react", "vue", "angular", "svelte"},
			DifficultyLevel: DifficultyBeginner,
			EstimatedTime:   "10 min",
			Translations: map[string]Translation{
				"es": {
					Title:       "Componentes Reutilizables",
					Description: "Un componente encapsula estructura, estilo y comportamiento en una pieza independiente que recibe datos por props y puede usarse muchas veces.",
					Analogy:     "Son como piezas de LEGO: cada pieza tiene una forma fija, pero combinándolas se construye cualquier cosa.",
				},
				"en": {
					Title:       "Reusable Components",
					Description: "A component encapsulates structure, style and behavior in an independent piece that receives data through props and can be used many times.",
					Analogy:     "They are like LEGO bricks: each brick has a fixed shape, but by combining them you can build anything.",
				},
				"fr": {
					Title:       "Composants Réutilisables",
					Description: "Un composant encapsule structure, style et comportement dans une pièce indépendante qui reçoit des données via des props et peut être utilisée de nombreuses fois.",
					Analogy:     "Ce sont comme des briques LEGO : chaque brique a une forme fixe, mais en les combinant on peut tout construire.",
				},
			},
			FrameworkDetails: map[string]FrameworkDetail{
				"react": {
					CodeExample: "function Card({ title, children }) {\n  return (\n    <div className=\"card\">\n      <h2>{title}</h2>\n      {children}\n    </div>\n  );\n}",
					Translations: map[string]FrameworkTranslation{
						"es": {
							Similarities: "Las props fluyen de padre a hijo, igual que en el resto de frameworks.",
							Differences:  "En React el componente es una función de JavaScript y el markup vive en JSX dentro de ella.",
						},
					},
				},
				"vue": {
					CodeExample: "<script setup>\ndefineProps(['title']);\n</script>\n\n<template>\n  <div class=\"card\">\n    <h2>{{ title }}</h2>\n    <slot />\n  </div>\n</template>",
					Translations: map[string]FrameworkTranslation{
						"es": {
							Similarities: "El flujo de datos por props es idéntico al de React.",
							Differences:  "Vue separa template y lógica en bloques del mismo archivo, y el contenido anidado llega por slots.",
						},
					},
				},
				"angular": {
					CodeExample: "@Component({\n  selector: 'app-card',\n  template: `<div class=\"card\"><h2>{{ title }}</h2><ng-content /></div>`,\n})\nexport class CardComponent {\n  @Input() title = '';\n}",
					Translations: map[string]FrameworkTranslation{
						"es": {
							Similarities: "También recibe datos del padre y proyecta contenido anidado.",
							Differences:  "Angular usa clases con decoradores y declara las entradas con @Input.",
						},
					},
				},
			},
			TableElements: map[string]TableElement{
				"react": {
					Similitudes: "Props del padre al hijo; contenido anidado vía children.",
					Diferencias: "Componente = función JavaScript con markup JSX.",
				},
				"vue": {
					Similitudes: "Props del padre al hijo; contenido anidado vía slots.",
					Diferencias: "Template y lógica en bloques separados del mismo archivo.",
				},
				"angular": {
					Similitudes: "Props del padre al hijo; proyección con ng-content.",
					Diferencias: "Clases con decoradores; entradas declaradas con @Input.",
				},
			},
		},
		{
			Slug:            "routing-y-navegacion",
			Frameworks:      []string{"react", "vue", "angular", "svelte"},
			DifficultyLevel: DifficultyIntermediate,
			EstimatedTime:   "15 min",
			Translations: map[string]Translation{
				"es": {
					Title:       "Routing y Navegación",
					Description: "El routing asocia URLs con vistas y permite navegar entre ellas sin recargar la página, manteniendo el historial del navegador sincronizado.",
					Analogy:     "Es como el índice de un libro: cada entrada apunta a una página concreta y puedes saltar directamente a ella sin hojear todo el libro.",
				},
				"en": {
					Title:       "Routing and Navigation",
					Description: "Routing maps URLs to views and lets you navigate between them without reloading the page, keeping the browser history in sync.",
					Analogy:     "It is like a book's index: each entry points to a specific page and you can jump straight to it without leafing through the whole book.",
				},
				"fr": {
					Title:       "Routing et Navigation",
					Description: "Le routing associe des URLs à des vues et permet de naviguer entre elles sans recharger la page, en gardant l'historique du navigateur synchronisé.",
					Analogy:     "C'est comme l'index d'un livre : chaque entrée pointe vers une page précise et on peut y sauter directement sans feuilleter tout le livre.",
				},
			},
			FrameworkDetails: map[string]FrameworkDetail{
				"react": {
					CodeExample: "<BrowserRouter>\n  <Routes>\n    <Route path=\"/\" element={<Home />} />\n    <Route path=\"/topics/:slug\" element={<TopicDetail />} />\n  </Routes>\n</BrowserRouter>",
					Translations: map[string]FrameworkTranslation{
						"es": {
							Similarities: "Declara rutas que asocian un path con un componente, como los demás.",
							Differences:  "El router no forma parte de React: react-router es una librería aparte que se elige e instala.",
						},
					},
				},
				"vue": {
					CodeExample: "const router = createRouter({\n  history: createWebHistory(),\n  routes: [\n    { path: '/', component: Home },\n    { path: '/topics/:slug', component: TopicDetail },\n  ],\n});",
					Translations: map[string]FrameworkTranslation{
						"es": {
							Similarities: "La tabla de rutas declarativa es muy parecida a la de react-router.",
							Differences:  "vue-router es la solución oficial del ecosistema y se integra con la instancia de la app.",
						},
					},
				},
				"angular": {
					CodeExample: "export const routes: Routes = [\n  { path: '', component: HomeComponent },\n  { path: 'topics/:slug', component: TopicDetailComponent },\n];",
					Translations: map[string]FrameworkTranslation{
						"es": {
							Similarities: "También mapea paths a componentes con parámetros dinámicos.",
							Differences:  "El router viene incluido en el framework, con guards e inyección de dependencias integrados.",
						},
					},
				},
			},
			TableElements: map[string]TableElement{
				"react": {
					Similitudes: "Tabla de rutas declarativa con parámetros dinámicos.",
					Diferencias: "react-router es una librería externa que se elige e instala.",
				},
				"vue": {
					Similitudes: "Tabla de rutas declarativa con parámetros dinámicos.",
					Diferencias: "vue-router es la solución oficial integrada con la instancia de la app.",
				},
				"angular": {
					Similitudes: "Paths mapeados a componentes con parámetros dinámicos.",
					Diferencias: "Router incluido en el framework, con guards e inyección de dependencias.",
				},
			},
		},
	}
}
