// Package gaussian - precomputed 128-level Ziggurat tables for the standard
// normal density f(x) = exp(-x²/2).
//
// Layout (one row per rejection layer i, 0 = the top strip, 127 = the
// tail strip at paramR = 3.44428647676):
//   - ytab[i]: layer height f(x_i), ytab[0] = 1
//   - ktab[i]: scaled fast-accept threshold floor(2²⁴·x_i/x_{i+1})
//   - wtab[i]: layer width x_{i+1}/2²⁴, so x = j·wtab[i] for a 24-bit j
//
// These constants are load-bearing: they define the sampler's output
// distribution and are embedded literally rather than computed at init.
package gaussian

var ytab = [128]float64{
	1.000000000000e+00, 9.635986230106e-01, 9.362808133532e-01, 9.130411042533e-01,
	8.922785066964e-01, 8.732393569191e-01, 8.554964076343e-01, 8.387789283490e-01,
	8.229020836988e-01, 8.077327382345e-01, 7.931710455189e-01, 7.791397265053e-01,
	7.655774360823e-01, 7.524344562483e-01, 7.396697876771e-01, 7.272491202846e-01,
	7.151433774134e-01, 7.033276464555e-01, 6.917803770352e-01, 6.804827689103e-01,
	6.694182972326e-01, 6.585723391200e-01, 6.479318761895e-01, 6.374852548962e-01,
	6.272219914504e-01, 6.171326115319e-01, 6.072085174666e-01, 5.974418772963e-01,
	5.878255314653e-01, 5.783529138026e-01, 5.690179841975e-01, 5.598151709106e-01,
	5.507393208767e-01, 5.417856566821e-01, 5.329497391448e-01, 5.242274346282e-01,
	5.156148863725e-01, 5.071084892534e-01, 4.987048674784e-01, 4.904008548119e-01,
	4.821934769864e-01, 4.740799360097e-01, 4.660575961247e-01, 4.581239712136e-01,
	4.502767134674e-01, 4.425136031715e-01, 4.348325394733e-01, 4.272315320217e-01,
	4.197086933789e-01, 4.122622321201e-01, 4.048904465478e-01, 3.975917189552e-01,
	3.903645103824e-01, 3.832073558160e-01, 3.761188597877e-01, 3.690976923340e-01,
	3.621425852824e-01, 3.552523288340e-01, 3.484257684153e-01, 3.416618017760e-01,
	3.349593763112e-01, 3.283174865883e-01, 3.217351720633e-01, 3.152115149696e-01,
	3.087456383668e-01, 3.023367043375e-01, 2.959839123205e-01, 2.896864975707e-01,
	2.834437297388e-01, 2.772549115602e-01, 2.711193776486e-01, 2.650364933872e-01,
	2.590056539119e-01, 2.530262831829e-01, 2.470978331389e-01, 2.412197829319e-01,
	2.353916382391e-01, 2.296129306493e-01, 2.238832171219e-01, 2.182020795181e-01,
	2.125691242013e-01, 2.069839817092e-01, 2.014463064960e-01, 1.959557767452e-01,
	1.905120942563e-01, 1.851149844057e-01, 1.797641961855e-01, 1.744595023241e-01,
	1.692006994921e-01, 1.639876086002e-01, 1.588200751955e-01, 1.536979699636e-01,
	1.486211893478e-01, 1.435896562948e-01, 1.386033211434e-01, 1.336621626694e-01,
	1.287661893089e-01, 1.239154405821e-01, 1.191099887449e-01, 1.143499407035e-01,
	1.096354402305e-01, 1.049666705330e-01, 1.003438572321e-01, 9.576727182663e-02,
	9.123723573291e-02, 8.675412501273e-02, 8.231837593198e-02, 7.793049152955e-02,
	7.359104942660e-02, 6.930071117421e-02, 6.506023352903e-02, 6.087048217448e-02,
	5.673244858404e-02, 5.264727097998e-02, 4.861626071634e-02, 4.464093597692e-02,
	4.072306554148e-02, 3.686472673857e-02, 3.306838393785e-02, 2.933699774108e-02,
	2.567418182882e-02, 2.208443726342e-02, 1.857352005774e-02, 1.514905528538e-02,
	1.182165326144e-02, 8.607194830806e-03, 5.532452726148e-03, 2.654352145666e-03,
}

var ktab = [128]uint32{
	0, 12590644, 14272653, 14988939, 15384584, 15635009, 15807561, 15933577,
	16029594, 16105155, 16166147, 16216399, 16258508, 16294295, 16325078, 16351831,
	16375291, 16396026, 16414479, 16431002, 16445880, 16459343, 16471578, 16482744,
	16492970, 16502368, 16511031, 16519039, 16526459, 16533352, 16539769, 16545755,
	16551348, 16556584, 16561493, 16566101, 16570433, 16574511, 16578353, 16581977,
	16585398, 16588629, 16591685, 16594575, 16597311, 16599901, 16602354, 16604679,
	16606881, 16608968, 16610945, 16612818, 16614592, 16616272, 16617861, 16619363,
	16620782, 16622121, 16623383, 16624570, 16625685, 16626730, 16627708, 16628619,
	16629465, 16630248, 16630969, 16631628, 16632228, 16632768, 16633248, 16633671,
	16634034, 16634340, 16634586, 16634774, 16634903, 16634972, 16634980, 16634926,
	16634810, 16634628, 16634381, 16634066, 16633680, 16633222, 16632688, 16632075,
	16631380, 16630598, 16629726, 16628757, 16627686, 16626507, 16625212, 16623794,
	16622243, 16620548, 16618698, 16616679, 16614476, 16612071, 16609444, 16606571,
	16603425, 16599973, 16596178, 16591995, 16587369, 16582237, 16576520, 16570120,
	16562917, 16554758, 16545450, 16534739, 16522287, 16507638, 16490152, 16468907,
	16442518, 16408804, 16364095, 16301683, 16207738, 16047994, 15704248, 15472926,
}

var wtab = [128]float64{
	1.623183148173e-08, 2.162915052141e-08, 2.542463050870e-08, 2.845795259378e-08,
	3.103400224822e-08, 3.330117262430e-08, 3.534390603448e-08, 3.721526726584e-08,
	3.895098957202e-08, 4.057639647639e-08, 4.211015489150e-08, 4.356646249035e-08,
	4.495639683362e-08, 4.628878640291e-08, 4.757079457351e-08, 4.880832372571e-08,
	5.000630253840e-08, 5.116889504282e-08, 5.229965586163e-08, 5.340164756242e-08,
	5.447753078705e-08, 5.552963445809e-08, 5.656001116588e-08, 5.757048136950e-08,
	5.856266904116e-08, 5.953803068620e-08, 6.049787917757e-08, 6.144340349012e-08,
	6.237568516263e-08, 6.329571212589e-08, 6.420439039375e-08, 6.510255400775e-08,
	6.599097354466e-08, 6.687036343408e-08, 6.774138828476e-08, 6.860466838103e-08,
	6.946078448040e-08, 7.031028202031e-08, 7.115367482293e-08, 7.199144837198e-08,
	7.282406272303e-08, 7.365195509922e-08, 7.447554221576e-08, 7.529522237034e-08,
	7.611137733075e-08, 7.692437404665e-08, 7.773456620861e-08, 7.854229567431e-08,
	7.934789377927e-08, 8.015168254714e-08, 8.095397581278e-08, 8.175508026992e-08,
	8.255529645349e-08, 8.335491966611e-08, 8.415424085690e-08, 8.495354746013e-08,
	8.575312420063e-08, 8.655325387228e-08, 8.735421809545e-08, 8.815629805900e-08,
	8.895977525205e-08, 8.976493219080e-08, 9.057205314509e-08, 9.138142487001e-08,
	9.219333734714e-08, 9.300808454073e-08, 9.382596517384e-08, 9.464728352978e-08,
	9.547235028466e-08, 9.630148337688e-08, 9.713500892014e-08, 9.797326216685e-08,
	9.881658852965e-08, 9.966534466930e-08, 1.005198996582e-07, 1.013806362300e-07,
	1.022479521264e-07, 1.031222615544e-07, 1.040039967687e-07, 1.048936097949e-07,
	1.057915743135e-07, 1.066983877252e-07, 1.076145734227e-07, 1.085406832963e-07,
	1.094773005080e-07, 1.104250425696e-07, 1.113845647706e-07, 1.123565640071e-07,
	1.133417830715e-07, 1.143410154749e-07, 1.153551108867e-07, 1.163849812907e-07,
	1.174316079769e-07, 1.184960495139e-07, 1.195794508721e-07, 1.206830539087e-07,
	1.218082094682e-07, 1.229563914105e-07, 1.241292129518e-07, 1.253284457970e-07,
	1.265560426583e-07, 1.278141639161e-07, 1.291052093752e-07, 1.304318563408e-07,
	1.317971055980e-07, 1.332043373599e-07, 1.346573799135e-07, 1.361605946060e-07,
	1.377189821027e-07, 1.393383166791e-07, 1.410253179711e-07, 1.427878735351e-07,
	1.446353314987e-07, 1.465788917298e-07, 1.486321384355e-07, 1.508117807188e-07,
	1.531387074019e-07, 1.556395320473e-07, 1.583489314255e-07, 1.613133259081e-07,
	1.645969528558e-07, 1.682924952029e-07, 1.725411286939e-07, 1.775742794960e-07,
	1.838135504770e-07, 1.921660408852e-07, 2.052954719520e-07, 2.226008398923e-07,
}
