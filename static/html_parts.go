package static

// Страница собирается из трех частей: форма, затем график echarts,
// затем логи построения, затем закрывающая разметка.
var (
	Part1 = `<!DOCTYPE html>
<html lang="ru">
<head>
<meta charset="utf-8">
<title>Вороной: заметание и отсечение</title>
<style>
	:root {
		--bg: #16181d;
		--panel: #22252c;
		--line: #3a3f4b;
		--text: #c9ccd3;
		--accent: #e8a33d;
	}
	* { box-sizing: border-box; }
	body {
		margin: 0;
		background: var(--bg);
		color: var(--text);
		font: 14px/1.4 "JetBrains Mono", Consolas, monospace;
	}
	main {
		display: grid;
		grid-template-columns: 1fr 40%;
		height: 100vh;
	}
	section { padding: 12px 16px; overflow: auto; }
	#log-panel { background: var(--panel); border-left: 2px solid var(--line); }
	h2 { margin: 0 0 10px; font-size: 16px; color: var(--accent); }
	fieldset {
		display: grid;
		grid-template-columns: repeat(3, auto 1fr);
		gap: 6px 10px;
		align-items: center;
		border: 1px solid var(--line);
		margin: 0 0 12px;
	}
	input, select, button {
		background: var(--bg);
		color: var(--text);
		border: 1px solid var(--line);
		padding: 4px 6px;
		font: inherit;
	}
	button { grid-column: 1 / -1; cursor: pointer; }
	button:hover { border-color: var(--accent); }
	#logs pre { margin: 0; white-space: pre-wrap; word-break: break-all; }
</style>
</head>
<body>
<main>
<section id="chart-panel">
	<h2>Диаграмма Вороного</h2>
	<form id="diagram-form" method="POST" action="/">
		<fieldset>
			<label for="width">Ширина</label>
			<input type="number" id="width" name="width" value="1000" min="100" max="5000">
			<label for="height">Высота</label>
			<input type="number" id="height" name="height" value="1000" min="100" max="5000">
			<label for="stations">Станции</label>
			<input type="number" id="stations" name="stations" value="12" min="1" max="200">
			<label for="mode">Расстановка</label>
			<select id="mode" name="mode">
				<option value="grid">сетка</option>
				<option value="random">случайно</option>
				<option value="jitter">сетка со сдвигом</option>
			</select>
			<label for="seed">Seed</label>
			<input type="number" id="seed" name="seed" placeholder="время">
			<label for="polygon">Отсечение</label>
			<select id="polygon" name="polygon">
				<option value="box">прямоугольник</option>
				<option value="hexagon">шестиугольник</option>
				<option value="star">звезда</option>
			</select>
			<button type="submit">Построить</button>
		</fieldset>
	</form>
`

	Part2 = `
</section>
<section id="log-panel">
	<h2>Ход заметания</h2>
	<div id="logs">`

	Part3 = `</div>
</section>
</main>
</body>
</html>
`
)
