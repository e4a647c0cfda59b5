package content

// posts is the blog, newest first. Edit here and redeploy; there is no
// runtime CRUD. Slugs must be canonical (see Validate).
var posts = []Post{
	{
		Slug:     "como-la-ia-esta-cambiando-el-seo",
		Title:    "Cómo la IA está cambiando el SEO (y qué hacer al respecto)",
		Category: "SEO Avanzado",
		Tags:     []string{"seo", "ia", "contenidos"},
		Date:     "2026-07-21",
		Author:   "Álvaro",
		Excerpt:  "Los resultados generados por IA ya responden buena parte de las búsquedas informacionales. Esto es lo que cambia para tu estrategia de contenidos.",
		Image:    "ia-seo.jpg",
		ImageAlt: "Pantalla con resultados de búsqueda generados por IA",
		Content: `Los motores de búsqueda ya no se limitan a enlazar: responden. Cuando una
respuesta generada por IA resuelve la duda del usuario, el clic que antes
llegaba a tu web desaparece.

## Qué sigue funcionando

- **Contenido con experiencia real**: casos, datos propios, opiniones fundadas.
- **Consultas transaccionales y locales**: la IA resume, pero no vende ni atiende.
- **Marca**: las búsquedas de marca siguen siendo tuyas.

## Qué deja de funcionar

El contenido enciclopédico sin ángulo propio. Si tu artículo se puede generar
con un prompt, un modelo lo generará, y el buscador lo mostrará sin citarte.

> La pregunta ya no es "¿posiciono?", sino "¿merezco ser la fuente citada?".

Mi recomendación: audita qué parte de tu tráfico depende de consultas que la IA
ya responde, y reinvierte ese esfuerzo en contenido que solo tú puedes escribir.`,
	},
	{
		Slug:     "checklist-auditoria-seo-tecnica",
		Title:    "Checklist de auditoría SEO técnica en 10 pasos",
		Category: "SEO Avanzado",
		Tags:     []string{"seo", "auditoria"},
		Date:     "2026-05-12",
		Author:   "Álvaro",
		Excerpt:  "Los diez puntos que reviso en toda auditoría técnica antes de tocar una sola línea de contenido.",
		Image:    "auditoria-seo.jpg",
		ImageAlt: "Lista de verificación sobre un portátil",
		Content: `Antes de hablar de contenidos o de enlaces, la casa tiene que estar en orden.
Estos son los diez puntos que reviso siempre, en este orden:

1. Indexabilidad: qué está en el índice y qué no debería estar.
2. Rastreo: sitemap, robots.txt y presupuesto de rastreo.
3. Canonicals y duplicados.
4. Arquitectura y profundidad de clic.
5. Velocidad de carga en móvil.
6. Datos estructurados y su validez.
7. Enlazado interno.
8. Errores 4xx/5xx y cadenas de redirección.
9. Internacionalización (hreflang) si aplica.
10. Logs del servidor: qué rastrea Google de verdad.

Cada punto merece su propio artículo, pero si solo puedes revisar tres, que
sean indexabilidad, velocidad y enlazado interno.`,
	},
	{
		Slug:     "medir-lo-que-importa-analitica-sin-humo",
		Title:    "Medir lo que importa: analítica sin humo",
		Category: "Analítica Web",
		Tags:     []string{"analitica", "marketing"},
		Date:     "2026-03-03",
		Author:   "Álvaro",
		Excerpt:  "Un panel con cuarenta métricas no es analítica, es decoración. Cómo elegir las tres cifras que de verdad mueven tu negocio.",
		Image:    "analitica.jpg",
		ImageAlt: "Panel de métricas en un monitor",
		Content: `La mayoría de los paneles que he auditado miden mucho y explican poco. Las
sesiones suben, las conversiones no, y nadie sabe por qué.

## Las tres preguntas

Toda métrica de tu panel debería responder a una de estas preguntas:

- ¿Cuánta gente adecuada llega?
- ¿Qué porcentaje hace lo que necesito que haga?
- ¿Cuánto vale cada una de esas acciones?

Si una métrica no responde a ninguna, es ruido. El tiempo en página, sin
contexto, es ruido. La tasa de rebote de un artículo informativo, ruido.

**Empieza por el final**: define la acción de negocio, instruméntala bien, y
construye el panel hacia atrás desde ahí.`,
	},
	{
		Slug:     "estrategia-digital-para-pymes-por-donde-empezar",
		Title:    "Estrategia digital para pymes: por dónde empezar",
		Category: "Estrategia Digital",
		Tags:     []string{"marketing", "estrategia"},
		Date:     "2026-01-19",
		Author:   "Álvaro",
		Excerpt:  "No necesitas estar en todos los canales. Necesitas un canal que funcione y la disciplina de no abandonarlo a los dos meses.",
		Image:    "estrategia-pymes.jpg",
		ImageAlt: "Reunión de trabajo con una pizarra llena de notas",
		Content: `La trampa habitual: abrir perfil en cinco redes, publicar tres semanas,
abandonar, y concluir que "el marketing digital no funciona para mi sector".

## Un canal, bien

Elige el canal donde tu cliente ya busca lo que vendes. Para la mayoría de
negocios de servicios, eso es el buscador. Para producto visual, quizá no.

Dedica seis meses a ese único canal con objetivos medibles por mes. Solo
cuando funcione, añade el segundo.

## El presupuesto mínimo viable

Más importante que la cifra es la constancia: un presupuesto modesto
sostenido doce meses rinde más que el triple gastado en tres.`,
	},
	{
		Slug:     "prompts-utiles-para-investigacion-de-palabras-clave",
		Title:    "Prompts útiles para investigación de palabras clave",
		Category: "IA",
		Tags:     []string{"ia", "seo"},
		Date:     "2025-11-10",
		Author:   "Álvaro",
		Excerpt:  "La IA no sustituye a las herramientas de keyword research, pero acelera la parte que nadie quiere hacer: agrupar y priorizar.",
		Image:    "prompts-keywords.jpg",
		ImageAlt: "Terminal con un prompt escrito",
		Content: `Las herramientas de siempre te dan el volumen; la IA te ayuda con el criterio.
Donde más tiempo me ahorra:

- **Agrupación por intención**: pasarle 200 consultas y pedir clusters.
- **Detección de canibalizaciones**: qué consultas compiten entre sí.
- **Borradores de arquitectura**: de cluster a propuesta de URL.

Un ejemplo de prompt que uso tal cual:

` + "```" + `
Agrupa estas consultas por intención de búsqueda (informacional,
comercial, transaccional) y por tema. Devuelve una tabla con:
consulta, intención, tema, página sugerida.
` + "```" + `

La salida nunca va directa al plan: es un borrador que revisar. Pero convierte
una tarde de hoja de cálculo en veinte minutos de revisión.`,
	},
	{
		Slug:     "por-que-tu-web-no-convierte",
		Title:    "Por qué tu web no convierte (y no es el diseño)",
		Category: "Estrategia Digital",
		Tags:     []string{"marketing", "conversion"},
		Date:     "2025-09-02",
		Author:   "Álvaro",
		Excerpt:  "Antes de rediseñar, responde tres preguntas: quién llega, qué espera encontrar y qué le estás pidiendo que haga.",
		Image:    "conversion.jpg",
		ImageAlt: "Embudo de conversión dibujado a mano",
		Content: `El rediseño es la solución favorita porque es visible. Pero en la mayoría de
webs que no convierten, el problema no es estético:

## Llega la gente equivocada

Atraes tráfico informacional y le pides una compra. No va a pasar. Revisa qué
consultas traen tráfico y qué intención tienen.

## La promesa no coincide

El anuncio promete una cosa, la página de destino cuenta otra. Cada campaña
merece su página.

## Pides demasiado, demasiado pronto

Un formulario de once campos para "solicitar información" es un filtro, no un
formulario. Pide lo mínimo y gana el resto de datos en la conversación.

Solo cuando estas tres cosas están resueltas tiene sentido hablar de botones,
colores y testimonios.`,
	},
}
