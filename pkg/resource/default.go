package resource

// DefaultDocument is the document rendered when no URL is given. Its
// body holds six divs: three of class "leaf" and three with ids
// id2 to id4. The six rules style the class and every id except leaf1.
const DefaultDocument = `<html>
<head>
<style>
.leaf { background-color: green; width: 400; height: 50; }
#leaf2 { background-color: red; }
#leaf3 { background-color: blue; width: 200; }
#id2 { background-color: red; width: 600; height: 40; }
#id3 { background-color: green; width: 300; height: 60; }
#id4 { background-color: blue; width: 100; height: 100; }
</style>
<script>1 + 2; "web" + "ling";</script>
</head>
<body>
<div class="leaf" id="leaf1"></div>
<div class="leaf" id="leaf2"></div>
<div class="leaf" id="leaf3"></div>
<div id="id2"></div>
<div id="id3"></div>
<div id="id4"></div>
</body>
</html>
`
