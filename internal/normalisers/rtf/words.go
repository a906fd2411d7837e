package rtf

// destinations are control words that start a group whose text is not body
// content. The whole group is skipped.
var destinations = map[string]bool{
	"aftncn": true, "aftnsep": true, "aftnsepc": true, "annotation": true,
	"atnauthor": true, "atndate": true, "atnicn": true, "atnid": true,
	"atnparent": true, "atnref": true, "atntime": true, "atrfend": true,
	"atrfstart": true, "author": true, "background": true, "bkmkend": true,
	"bkmkstart": true, "blipuid": true, "buptim": true, "category": true,
	"colorschememapping": true, "colortbl": true, "comment": true,
	"company": true, "creatim": true, "datafield": true, "datastore": true,
	"defchp": true, "defpap": true, "do": true, "doccomm": true,
	"docvar": true, "dptxbxtext": true, "ebcend": true, "ebcstart": true,
	"factoidname": true, "falt": true, "fchars": true, "ffdeftext": true,
	"ffentrymcr": true, "ffexitmcr": true, "ffformat": true, "ffhelptext": true,
	"ffl": true, "ffname": true, "ffstattext": true, "file": true,
	"filetbl": true, "fldinst": true, "fldtype": true, "fname": true,
	"fontemb": true, "fontfile": true, "fonttbl": true, "footer": true,
	"footerf": true, "footerl": true, "footerr": true, "footnote": true,
	"formfield": true, "ftncn": true, "ftnsep": true, "ftnsepc": true,
	"g": true, "generator": true, "gridtbl": true, "header": true,
	"headerf": true, "headerl": true, "headerr": true, "hl": true,
	"hlfr": true, "hlinkbase": true, "hlloc": true, "hlsrc": true,
	"hsv": true, "htmltag": true, "info": true, "keycode": true,
	"keywords": true, "latentstyles": true, "lchars": true,
	"levelnumbers": true, "leveltext": true, "lfolevel": true,
	"linkval": true, "list": true, "listlevel": true, "listname": true,
	"listoverride": true, "listoverridetable": true, "listpicture": true,
	"liststylename": true, "listtable": true, "listtext": true,
	"lsdlockedexcept": true, "macc": true, "maccPr": true, "mailmerge": true,
	"maln": true, "malnScr": true, "manager": true, "margPr": true,
	"mbar": true, "mbarPr": true, "mbaseJc": true, "mbegChr": true,
	"mborderBox": true, "mborderBoxPr": true, "mbox": true, "mboxPr": true,
	"mchr": true, "mcount": true, "mctrlPr": true, "md": true,
	"mdeg": true, "mdegHide": true, "mden": true, "mdiff": true,
	"mdPr": true, "me": true, "mendChr": true, "meqArr": true,
	"meqArrPr": true, "mf": true, "mfName": true, "mfPr": true,
	"mfunc": true, "mfuncPr": true, "mgroupChr": true, "mgroupChrPr": true,
	"mgrow": true, "mhideBot": true, "mhideLeft": true, "mhideRight": true,
	"mhideTop": true, "mhtmltag": true, "mlim": true, "mlimloc": true,
	"mlimlow": true, "mlimlowPr": true, "mlimupp": true, "mlimuppPr": true,
	"mm": true, "mmaddfieldname": true, "mmath": true, "mmathPict": true,
	"mmathPr": true, "mmaxdist": true, "mmc": true, "mmcJc": true,
	"mmconnectstr": true, "mmconnectstrdata": true, "mmcPr": true,
	"mmcs": true, "mmdatasource": true, "mmheadersource": true,
	"mmmailsubject": true, "mmodso": true, "mmodsofilter": true,
	"mmodsofldmpdata": true, "mmodsomappedname": true, "mmodsoname": true,
	"mmodsorecipdata": true, "mmodsosort": true, "mmodsosrc": true,
	"mmodsotable": true, "mmodsoudl": true, "mmodsoudldata": true,
	"mmodsouniquetag": true, "mmPr": true, "mmquery": true, "mmr": true,
	"mnary": true, "mnaryPr": true, "mnoBreak": true, "mnum": true,
	"mobjDist": true, "moMath": true, "moMathPara": true,
	"moMathParaPr": true, "mopEmu": true, "mphant": true, "mphantPr": true,
	"mplcHide": true, "mpos": true, "mr": true, "mrad": true,
	"mradPr": true, "mrPr": true, "msepChr": true, "mshow": true,
	"mshp": true, "msPre": true, "msPrePr": true, "msSub": true,
	"msSubPr": true, "msSubSup": true, "msSubSupPr": true, "msSup": true,
	"msSupPr": true, "mstrikeBLTR": true, "mstrikeH": true,
	"mstrikeTLBR": true, "mstrikeV": true, "msub": true, "msubHide": true,
	"msup": true, "msupHide": true, "mtransp": true, "mtype": true,
	"mvertJc": true, "mvfmf": true, "mvfml": true, "mvtof": true,
	"mvtol": true, "mzeroAsc": true, "mzeroDesc": true, "mzeroWid": true,
	"nesttableprops": true, "nextfile": true, "nonesttables": true,
	"nonshppict": true, "objalias": true, "objclass": true, "objdata": true,
	"object": true, "objname": true, "objsect": true, "objtime": true,
	"oldcprops": true, "oldpprops": true, "oldsprops": true,
	"oldtprops": true, "oleclsid": true, "operator": true, "panose": true,
	"password": true, "passwordhash": true, "pgp": true, "pgptbl": true,
	"picprop": true, "pict": true, "pn": true, "pnseclvl": true,
	"pntext": true, "pntxta": true, "pntxtb": true, "printim": true,
	"private": true, "propname": true, "protend": true, "protstart": true,
	"protusertbl": true, "pxe": true, "revtbl": true,
	"revtim": true, "rsidtbl": true, "rxe": true, "shp": true,
	"shpgrp": true, "shpinst": true, "shppict": true, "shprslt": true,
	"shptxt": true, "sn": true, "sp": true, "staticval": true,
	"stylesheet": true, "subject": true, "sv": true, "svb": true,
	"tc": true, "template": true, "themedata": true, "title": true,
	"txe": true, "ud": true, "upr": true, "userprops": true,
	"wgrffmtfilter": true, "windowcaption": true, "writereservation": true,
	"writereservhash": true, "xe": true, "xform": true,
	"xmlattrname": true, "xmlattrvalue": true, "xmlclose": true,
	"xmlname": true, "xmlnstbl": true, "xmlopen": true,
}

// specialWords are control words that produce visible text.
var specialWords = map[string]string{
	"par":       "\n",
	"line":      "\n",
	"sect":      "\n\n",
	"page":      "\n\n",
	"row":       "\n",
	"tab":       "\t",
	"cell":      "\t",
	"nestcell":  "\t",
	"emdash":    "—",
	"endash":    "–",
	"emspace":   " ",
	"enspace":   " ",
	"qmspace":   " ",
	"bullet":    "•",
	"lquote":    "‘",
	"rquote":    "’",
	"ldblquote": "“",
	"rdblquote": "”",
}
