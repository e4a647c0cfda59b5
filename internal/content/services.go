package content

// services in display order for /servicios and the home page.
var services = []Service{
	{
		Slug:    "consultoria-seo",
		Name:    "Consultoría SEO",
		Summary: "Auditoría, estrategia y acompañamiento para que tu web capte tráfico cualificado de forma sostenida.",
		Benefits: []string{
			"Auditoría técnica y de contenidos",
			"Plan de acción priorizado por impacto",
			"Seguimiento mensual con métricas de negocio",
		},
		Content: `El SEO que practico no persigue rankings por vanidad: persigue clientes.
Empiezo por entender qué buscan tus clientes y con qué intención, audito lo
que ya tienes, y construyo un plan priorizado por impacto y esfuerzo.

Trabajo con compromiso de transparencia total: cada mes sabrás qué se ha
hecho, qué ha funcionado y qué toca después.`,
	},
	{
		Slug:    "publicidad-digital",
		Name:    "Publicidad Digital",
		Summary: "Campañas de pago en buscadores y redes con una sola obsesión: el coste por cliente captado.",
		Benefits: []string{
			"Estructura de campañas orientada a conversión",
			"Páginas de destino alineadas con cada anuncio",
			"Optimización continua del coste por adquisición",
		},
		Content: `La publicidad digital quema presupuesto cuando se mide en clics y lo
multiplica cuando se mide en clientes. Diseño campañas partiendo del margen
de tu negocio: cuánto puedes pagar por captar un cliente y qué canal lo
consigue por menos.`,
	},
	{
		Slug:    "analitica-digital",
		Name:    "Analítica Digital",
		Summary: "Medición fiable y paneles que responden preguntas de negocio, no coleccionan métricas.",
		Benefits: []string{
			"Plan de medición a partir de objetivos de negocio",
			"Implementación y validación del etiquetado",
			"Paneles con las métricas que importan",
		},
		Content: `Sin medición fiable, toda decisión de marketing es una apuesta. Defino
contigo qué acciones valen dinero, las instrumento correctamente y construyo
paneles que cualquiera de tu equipo puede leer en cinco minutos.`,
	},
	{
		Slug:    "ia-aplicada-al-marketing",
		Name:    "IA aplicada al Marketing",
		Summary: "Integración práctica de IA en tus procesos de marketing: más producción sin perder el criterio.",
		Benefits: []string{
			"Diagnóstico de procesos automatizables",
			"Flujos de trabajo con supervisión humana",
			"Formación de tu equipo en uso responsable",
		},
		Content: `La IA bien usada multiplica la capacidad de un equipo pequeño; mal usada,
multiplica el contenido mediocre. Te ayudo a identificar qué procesos merecen
automatizarse, a montar flujos con revisión humana donde importa, y a formar
a tu equipo para que la herramienta no sustituya al criterio.`,
	},
	{
		Slug:    "estrategia-digital-integral",
		Name:    "Estrategia Digital Integral",
		Summary: "Un plan único que ordena SEO, publicidad, contenidos y medición hacia el mismo objetivo.",
		Benefits: []string{
			"Diagnóstico completo de presencia digital",
			"Hoja de ruta a doce meses con hitos trimestrales",
			"Un único interlocutor para toda la estrategia",
		},
		Content: `Cuando cada canal lo lleva un proveedor distinto, nadie mira el conjunto.
Este servicio es para negocios que quieren una única hoja de ruta: qué canal
priorizar, cuánto invertir en cada uno y cómo se mide el conjunto.`,
	},
}

// phases is the six-phase methodology shown on /mi-metodo, in order.
var phases = []MethodPhase{
	{
		Number:  1,
		Slug:    "analisis",
		Name:    "Análisis",
		Summary: "Entender tu negocio, tu mercado y tu punto de partida real.",
		Content: `Todo empieza por los datos: qué vendes, a quién, contra quién compites y qué
dice tu analítica actual (si existe). De esta fase sale un diagnóstico honesto,
incluyendo lo que no funciona.`,
	},
	{
		Number:  2,
		Slug:    "estrategia",
		Name:    "Estrategia",
		Summary: "Decidir dónde jugar y dónde no, con objetivos medibles.",
		Content: `Con el diagnóstico sobre la mesa, decidimos canales, mensajes y presupuesto.
Cada objetivo queda escrito con su métrica y su plazo. Lo que no se va a hacer
queda igual de escrito que lo que sí.`,
	},
	{
		Number:  3,
		Slug:    "implementacion",
		Name:    "Implementación",
		Summary: "Ejecutar el plan con calendario y responsables claros.",
		Content: `La estrategia sin ejecución es un PDF caro. En esta fase se construye: web,
contenidos, campañas, medición. Trabajo con tu equipo o con el mío, siempre
con un calendario visible.`,
	},
	{
		Number:  4,
		Slug:    "medicion",
		Name:    "Medición",
		Summary: "Comprobar con datos qué está funcionando y qué no.",
		Content: `Cada acción del plan tiene su métrica desde la fase dos. Aquí se revisan sin
maquillaje: qué canal trae clientes, a qué coste, y qué hipótesis del plan
eran erróneas.`,
	},
	{
		Number:  5,
		Slug:    "optimizacion",
		Name:    "Optimización",
		Summary: "Redoblar lo que funciona y corregir o cortar lo que no.",
		Content: `Con datos de verdad, optimizar deja de ser adivinar. Se reasigna presupuesto
hacia lo que rinde, se corrige lo corregible y se corta sin pena lo que no
justifica su coste.`,
	},
	{
		Number:  6,
		Slug:    "escalado",
		Name:    "Escalado",
		Summary: "Crecer sobre una base que ya ha demostrado rentabilidad.",
		Content: `Escalar antes de tiempo es la forma más rápida de quemar presupuesto. Cuando
un canal demuestra rentabilidad sostenida, se amplía inversión, se abren
canales complementarios y se repite el ciclo.`,
	},
}
